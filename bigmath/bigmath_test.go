package bigmath

import (
	"math/big"
	"testing"
)

func bi(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal: " + s)
	}
	return n
}

func TestModPow(t *testing.T) {
	type args struct {
		base, exp, mod *big.Int
	}
	tests := []struct {
		name    string
		args    args
		want    *big.Int
		wantErr bool
	}{
		{"toy accumulator step", args{bi("4"), bi("13"), bi("209")}, bi("9"), false},
		{"exponent zero, mod greater than one", args{bi("5"), bi("0"), bi("209")}, bi("1"), false},
		{"exponent zero, mod one", args{bi("5"), bi("0"), bi("1")}, bi("0"), false},
		{"non-positive modulus rejected", args{bi("5"), bi("2"), bi("0")}, nil, true},
		{"negative base rejected", args{bi("-1"), bi("2"), bi("5")}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModPow(tt.args.base, tt.args.exp, tt.args.mod)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Cmp(tt.want) != 0 {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExtGCD(t *testing.T) {
	gcd, x, y, err := ExtGCD(bi("35"), bi("15"))
	if err != nil {
		t.Fatal(err)
	}
	if gcd.Cmp(bi("5")) != 0 {
		t.Fatalf("gcd = %s, want 5", gcd)
	}
	sum := new(big.Int).Add(new(big.Int).Mul(bi("35"), x), new(big.Int).Mul(bi("15"), y))
	if sum.Cmp(gcd) != 0 {
		t.Fatalf("35*%s + 15*%s = %s, want %s", x, y, sum, gcd)
	}
}

func TestExtGCD_ZeroB(t *testing.T) {
	gcd, x, y, err := ExtGCD(bi("17"), bi("0"))
	if err != nil {
		t.Fatal(err)
	}
	if gcd.Cmp(bi("17")) != 0 || x.Cmp(big1) != 0 || y.Cmp(big0) != 0 {
		t.Fatalf("got (%s, %s, %s), want (17, 1, 0)", gcd, x, y)
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(bi("17"), bi("90"))
	if err != nil {
		t.Fatal(err)
	}
	product := new(big.Int).Mod(new(big.Int).Mul(bi("17"), inv), bi("90"))
	if product.Cmp(big1) != 0 {
		t.Fatalf("17 * %s mod 90 = %s, want 1", inv, product)
	}
}

func TestModInverse_NoInverse(t *testing.T) {
	if _, err := ModInverse(bi("6"), bi("9")); err != ErrNoInverse {
		t.Fatalf("err = %v, want ErrNoInverse", err)
	}
}

func TestModInverse_Zero(t *testing.T) {
	if _, err := ModInverse(bi("0"), bi("90")); err != ErrNoInverse {
		t.Fatalf("err = %v, want ErrNoInverse", err)
	}
}

func TestMillerRabin(t *testing.T) {
	tests := []struct {
		name string
		n    *big.Int
		want bool
	}{
		{"two is prime", bi("2"), true},
		{"three is prime", bi("3"), true},
		{"even composite", bi("100"), false},
		{"small prime", bi("97"), true},
		{"small composite", bi("91"), false}, // 7*13
		{"carmichael number 561", bi("561"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MillerRabin(tt.n, 64); got != tt.want {
				t.Fatalf("MillerRabin(%s) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestMillerRabin_Deterministic(t *testing.T) {
	n := bi("1000000000000000000000000000057") // a large prime
	first := MillerRabin(n, 64)
	for i := 0; i < 5; i++ {
		if MillerRabin(n, 64) != first {
			t.Fatal("MillerRabin is not deterministic across repeated calls")
		}
	}
}
