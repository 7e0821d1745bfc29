package witness

import (
	"math/big"

	"github.com/dtrust-io/go-accumid/accumulator"
)

// AtEnrollment returns a newly enrolled device's initial witness: the
// accumulator root as it stood immediately before this device's prime
// was folded in. It satisfies witness^p ≡ next_root (mod N) by
// construction, since next_root = modpow(root, p, N).
func AtEnrollment(preUpdateRoot *big.Int) *big.Int {
	return new(big.Int).Set(preUpdateRoot)
}

// RefreshOnAdd returns the new witness for an already-active device
// whose current witness is w, after pNew has been folded into the
// accumulator. This is a single cheap exponentiation — no trapdoor
// required, since w already excludes the device's own prime and
// folding in another prime just extends the same exponent product.
func RefreshOnAdd(w, pNew, n *big.Int) (*big.Int, error) {
	return accumulator.Add(w, pNew, n)
}

// Entry names one active device's prime for a batch witness refresh.
type Entry struct {
	DeviceID string
	Prime    *big.Int
}

// RefreshAllAfterRemoval recomputes the witness for every entry against
// newRoot, using the trapdoor: w_i := remove_single(newRoot, p_i, λ).
// This must be called with newRoot already advanced past the removed
// prime; the returned map is keyed by DeviceID.
func RefreshAllAfterRemoval(newRoot *big.Int, entries []Entry, lambda, n *big.Int) (map[string]*big.Int, error) {
	out := make(map[string]*big.Int, len(entries))
	for _, e := range entries {
		w, err := accumulator.RemoveSingle(newRoot, e.Prime, lambda, n)
		if err != nil {
			return nil, err
		}
		out[e.DeviceID] = w
	}
	return out, nil
}
