package anchor

import (
	"bytes"
	"context"
)

// Divergence reports a mismatch between the locally committed state
// and the anchor's own view of it. In a deployment where the anchor is
// a separately operated service, local state and anchor state can
// drift apart after a crash between a local commit and its anchor
// confirmation, or vice versa. Reconcile surfaces that drift; it never
// resolves it automatically, since choosing which side is authoritative
// is a human decision.
type Divergence struct {
	LocalVersion, AnchorVersion uint64
	LocalRoot, AnchorRoot       []byte
	RootsMatch                  bool
}

// Reconcile compares the local committed root/version against the
// anchor's GetCurrentState and reports any divergence. It performs a
// single read-only round trip; callers decide how often to invoke it
// (e.g. on an operator-triggered health check), not a background
// goroutine started implicitly by this package.
func Reconcile(ctx context.Context, a Anchor, localVersion uint64, localRoot []byte) (Divergence, error) {
	state, err := a.GetCurrentState(ctx)
	if err != nil {
		return Divergence{}, err
	}
	return Divergence{
		LocalVersion:  localVersion,
		AnchorVersion: state.Version,
		LocalRoot:     localRoot,
		AnchorRoot:    state.RootBytes,
		RootsMatch:    bytes.Equal(localRoot, state.RootBytes),
	}, nil
}
