package storemem

import (
	"context"
	"testing"

	"github.com/dtrust-io/go-accumid/store"
)

func TestDeviceStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s := NewDeviceStore()
	rec := store.DeviceRecord{DeviceID: []byte("device-1"), PublicKey: "pem", Status: 1}

	if err := s.Put(ctx, rec, false); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, []byte("device-1"))
	if err != nil {
		t.Fatal(err)
	}
	if got.PublicKey != "pem" {
		t.Fatalf("got %+v", got)
	}
}

func TestDeviceStore_PutRejectsDuplicateEnrollment(t *testing.T) {
	ctx := context.Background()
	s := NewDeviceStore()
	rec := store.DeviceRecord{DeviceID: []byte("device-1")}
	if err := s.Put(ctx, rec, false); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, rec, false); err != store.ErrAlreadyExists {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestDeviceStore_PutRejectsMissingUpdateTarget(t *testing.T) {
	ctx := context.Background()
	s := NewDeviceStore()
	rec := store.DeviceRecord{DeviceID: []byte("device-1")}
	if err := s.Put(ctx, rec, true); err != store.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeviceStore_GetMissing(t *testing.T) {
	s := NewDeviceStore()
	_, err := s.Get(context.Background(), []byte("nope"))
	if err != store.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeviceStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewDeviceStore()
	_ = s.Put(ctx, store.DeviceRecord{DeviceID: []byte("a")}, false)
	_ = s.Put(ctx, store.DeviceRecord{DeviceID: []byte("b")}, false)
	recs, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
}

func TestMetadataStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewMetadataStore()
	if err := s.Set(ctx, store.MetaKeyRoot, "abc"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(ctx, store.MetaKeyRoot)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != "abc" {
		t.Fatalf("v=%q ok=%v", v, ok)
	}
}

func TestMetadataStore_GetMissingKey(t *testing.T) {
	s := NewMetadataStore()
	_, ok, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected ok=false for missing key")
	}
}
