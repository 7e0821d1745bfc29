package bigmath

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// MillerRabin reports whether n is probably prime, using `rounds` rounds
// of the Miller-Rabin test. Witnesses are derived deterministically from
// SHA-256(n || round) rather than a random source, so a given (n, rounds)
// pair always produces the same verdict — required so hash-to-prime
// searches and their test vectors are reproducible across runs and
// machines.
func MillerRabin(n *big.Int, rounds int) bool {
	if n.Cmp(big3) < 0 {
		return n.Cmp(big2) == 0
	}
	if n.Bit(0) == 0 {
		return false
	}

	// n - 1 = d * 2^r, with d odd.
	nMinus1 := new(big.Int).Sub(n, big1)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nBytes := n.Bytes()
	upper := new(big.Int).Sub(n, big.NewInt(4)) // candidates live in [2, n-2]

	for round := 0; round < rounds; round++ {
		a := witnessCandidate(nBytes, round, upper)
		if !millerRabinRound(a, d, r, n, nMinus1) {
			return false
		}
	}
	return true
}

// witnessCandidate maps a round counter to a value in [2, n-2] using
// SHA-256(n || round) as the entropy source, expanding the digest with
// successive counters if a single block of hash output is not enough bits
// to cover the range.
func witnessCandidate(nBytes []byte, round int, upper *big.Int) *big.Int {
	if upper.Sign() <= 0 {
		return new(big.Int).Set(big2)
	}
	var counter uint32
	var stream []byte
	for {
		h := sha256.New()
		h.Write(nBytes)
		var roundBuf [4]byte
		binary.BigEndian.PutUint32(roundBuf[:], uint32(round))
		h.Write(roundBuf[:])
		var ctrBuf [4]byte
		binary.BigEndian.PutUint32(ctrBuf[:], counter)
		h.Write(ctrBuf[:])
		stream = h.Sum(stream)
		counter++

		if len(stream)*8 >= upper.BitLen() || counter > 1<<16 {
			break
		}
	}
	acc := new(big.Int).SetBytes(stream)
	if acc.Cmp(upper) > 0 {
		acc.Mod(acc, upper)
	}
	return new(big.Int).Add(acc, big2)
}

func millerRabinRound(a, d *big.Int, r int, n, nMinus1 *big.Int) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(big1) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x.Exp(x, big2, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}
