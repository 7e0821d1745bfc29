package primemap

import (
	"math/big"
	"testing"

	"github.com/dtrust-io/go-accumid/bigmath"
	"github.com/dtrust-io/go-accumid/params"
)

func TestMapToPrime_Deterministic(t *testing.T) {
	p := params.Toy()
	a, err := MapToPrime([]byte("device-001"), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MapToPrime([]byte("device-001"), p)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) != 0 {
		t.Fatalf("MapToPrime not deterministic: %s != %s", a, b)
	}
}

func TestMapToPrime_DifferentKeysDifferentPrimes(t *testing.T) {
	p := params.Toy()
	a, err := MapToPrime([]byte("device-001"), p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MapToPrime([]byte("device-002"), p)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(b) == 0 {
		t.Fatal("distinct keys produced the same prime")
	}
}

func TestMapToPrime_ResultIsPrimeAndOdd(t *testing.T) {
	p := params.Toy()
	prime, err := MapToPrime([]byte("device-001"), p)
	if err != nil {
		t.Fatal(err)
	}
	if prime.Bit(0) != 1 {
		t.Fatal("result is not odd")
	}
	if !bigmath.MillerRabin(prime, p.MillerRabinRounds) {
		t.Fatal("result does not pass Miller-Rabin")
	}
}

func TestMapToPrime_ResultCoprimeToLambda(t *testing.T) {
	p := params.Toy()
	prime, err := MapToPrime([]byte("device-001"), p)
	if err != nil {
		t.Fatal(err)
	}
	gcd, err := bigmath.GCD(prime, p.Lambda.Int())
	if err != nil {
		t.Fatal(err)
	}
	if gcd.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("result shares a factor with lambda: gcd = %s", gcd)
	}
}

func TestMapToPrime_ResultHasMinimumBitLength(t *testing.T) {
	p := params.Toy()
	prime, err := MapToPrime([]byte("device-001"), p)
	if err != nil {
		t.Fatal(err)
	}
	if prime.BitLen() < p.MinPrimeBits {
		t.Fatalf("bit length %d below floor %d", prime.BitLen(), p.MinPrimeBits)
	}
}

func TestMapToPrime_RejectsEmptyKey(t *testing.T) {
	p := params.Toy()
	_, err := MapToPrime(nil, p)
	if err != ErrEmptyKey {
		t.Fatalf("err = %v, want ErrEmptyKey", err)
	}
}

func TestMapToPrime_FailsWhenAttemptsExhausted(t *testing.T) {
	p, err := params.New(big.NewInt(209), big.NewInt(4), params.NewLambda(big.NewInt(90)),
		params.WithMinPrimeBits(8), params.WithMaxPrimeAttempts(1))
	if err != nil {
		t.Fatal(err)
	}
	// One attempt is vanishingly unlikely to land a candidate that is both
	// prime and coprime to a tiny lambda, so this should fail deterministically
	// for at least one of several keys tried.
	failed := false
	for _, key := range [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d"), []byte("e")} {
		if _, err := MapToPrime(key, p); err == ErrNoSuitablePrime {
			failed = true
			break
		}
	}
	if !failed {
		t.Skip("all sampled keys happened to land a suitable prime on the first attempt")
	}
}
