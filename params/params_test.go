package params

import (
	"context"
	"math/big"
	"testing"
)

func TestToy(t *testing.T) {
	p := Toy()
	if p.N.Cmp(big.NewInt(209)) != 0 || p.G.Cmp(big.NewInt(4)) != 0 {
		t.Fatalf("unexpected toy params: N=%s g=%s", p.N, p.G)
	}
	if p.Lambda.Int().Cmp(big.NewInt(90)) != 0 {
		t.Fatalf("unexpected toy lambda: %s", p.Lambda.Int())
	}
}

func TestNew_RejectsNonCoprimeGenerator(t *testing.T) {
	// N = 209 = 11*19, g = 11 shares a factor with N.
	_, err := New(big.NewInt(209), big.NewInt(11), NewLambda(big.NewInt(90)))
	if err != ErrInvalidGenerator {
		t.Fatalf("err = %v, want ErrInvalidGenerator", err)
	}
}

func TestNew_RejectsGeneratorNotLessThanModulus(t *testing.T) {
	_, err := New(big.NewInt(10), big.NewInt(10), NewLambda(big.NewInt(1)))
	if err != ErrInvalidModulus {
		t.Fatalf("err = %v, want ErrInvalidModulus", err)
	}
}

func TestLambda_Zeroize(t *testing.T) {
	l := NewLambda(big.NewInt(90))
	l.Zeroize()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic reading a zeroized lambda")
		}
	}()
	_ = l.Int()
}

type fakeMeta map[string]string

func (f fakeMeta) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f[key]
	return v, ok, nil
}

type fakeSecrets map[string][]byte

func (f fakeSecrets) GetSecret(_ context.Context, key string) ([]byte, error) {
	return f[key], nil
}

func TestLoadFromSecretStore(t *testing.T) {
	meta := fakeMeta{"N_hex": "0xd1", "g_hex": "0x04"}
	secrets := fakeSecrets{"lambda_n_hex": big.NewInt(90).Bytes()}

	p, err := LoadFromSecretStore(context.Background(), meta, secrets)
	if err != nil {
		t.Fatal(err)
	}
	if p.N.Cmp(big.NewInt(0xd1)) != 0 {
		t.Fatalf("N = %s, want 0xd1", p.N)
	}
}

func TestLoadFromSecretStore_MissingKey(t *testing.T) {
	meta := fakeMeta{"g_hex": "0x04"}
	secrets := fakeSecrets{}
	_, err := LoadFromSecretStore(context.Background(), meta, secrets)
	if err != ErrMissingSecret {
		t.Fatalf("err = %v, want ErrMissingSecret", err)
	}
}
