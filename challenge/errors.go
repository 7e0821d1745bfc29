package challenge

import "errors"

var (
	ErrDeviceNotActive = errors.New("challenge: device does not exist or is not ACTIVE")
)
