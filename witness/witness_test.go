package witness

import (
	"math/big"
	"testing"

	"github.com/dtrust-io/go-accumid/accumulator"
)

var (
	toyN      = big.NewInt(209)
	toyG      = big.NewInt(4)
	toyLambda = big.NewInt(90)
)

func TestAtEnrollment_MatchesPreUpdateRoot(t *testing.T) {
	root := big.NewInt(168)
	w := AtEnrollment(root)
	if w.Cmp(root) != 0 {
		t.Fatalf("got %s, want %s", w, root)
	}
	// Mutating the root afterward must not affect the returned witness.
	root.SetInt64(0)
	if w.Cmp(big.NewInt(168)) != 0 {
		t.Fatal("AtEnrollment aliased the caller's root")
	}
}

func TestRefreshOnAdd_VerifiesAgainstNewRoot(t *testing.T) {
	// Device enrolled with prime 13, witness = g (root before any prime).
	w := AtEnrollment(toyG)
	newRoot, err := accumulator.Add(toyG, big.NewInt(13), toyN)
	if err != nil {
		t.Fatal(err)
	}
	if !accumulator.Verify(w, big.NewInt(13), newRoot, toyN) {
		t.Fatal("witness at enrollment should already verify against the root it was issued against")
	}

	// Now fold in prime 17; refresh the first device's witness.
	refreshed, err := RefreshOnAdd(w, big.NewInt(17), toyN)
	if err != nil {
		t.Fatal(err)
	}
	nextRoot, err := accumulator.Add(newRoot, big.NewInt(17), toyN)
	if err != nil {
		t.Fatal(err)
	}
	if !accumulator.Verify(refreshed, big.NewInt(13), nextRoot, toyN) {
		t.Fatal("refreshed witness must verify against the root after the new prime was added")
	}
}

func TestRefreshAllAfterRemoval(t *testing.T) {
	root := big.NewInt(196) // g folded through 13, 17, 23
	newRoot, err := accumulator.RemoveSingle(root, big.NewInt(17), toyLambda, toyN)
	if err != nil {
		t.Fatal(err)
	}

	entries := []Entry{
		{DeviceID: "d13", Prime: big.NewInt(13)},
		{DeviceID: "d23", Prime: big.NewInt(23)},
	}
	refreshed, err := RefreshAllAfterRemoval(newRoot, entries, toyLambda, toyN)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		w := refreshed[e.DeviceID]
		if !accumulator.Verify(w, e.Prime, newRoot, toyN) {
			t.Fatalf("refreshed witness for %s does not verify: w=%s p=%s root=%s", e.DeviceID, w, e.Prime, newRoot)
		}
	}
}
