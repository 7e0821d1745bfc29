package hashutil

import (
	"math/big"
	"testing"
)

func TestBEBytes(t *testing.T) {
	b, err := BEBytes(big.NewInt(196), 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0, 196}
	if string(b) != string(want) {
		t.Fatalf("got %v, want %v", b, want)
	}
}

func TestBEBytes_TooLarge(t *testing.T) {
	_, err := BEBytes(big.NewInt(1<<20), 1)
	if err != ErrTooLarge {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestKeccak256_Deterministic(t *testing.T) {
	a := Keccak256([]byte("hello"))
	b := Keccak256([]byte("hello"))
	if a != b {
		t.Fatal("Keccak256 is not deterministic")
	}
	c := Keccak256([]byte("hel"), []byte("lo"))
	if a != c {
		t.Fatal("Keccak256 should treat variadic args as one concatenated stream")
	}
}
