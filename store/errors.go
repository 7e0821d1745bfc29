package store

import "errors"

var (
	ErrNotFound        = errors.New("store: no record for that key")
	ErrAlreadyExists   = errors.New("store: record already exists")
	ErrPreconditionFailed = errors.New("store: write precondition did not hold (concurrent modification)")
)
