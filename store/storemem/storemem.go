// Package storemem implements store.DeviceStore and store.MetadataStore
// in memory, for tests and for the local-only operating mode where the
// system runs without an anchor.
package storemem

import (
	"context"
	"sync"

	"github.com/dtrust-io/go-accumid/store"
)

// DeviceStore is an in-memory, mutex-guarded store.DeviceStore.
type DeviceStore struct {
	mu      sync.RWMutex
	records map[string]store.DeviceRecord
}

// NewDeviceStore returns an empty DeviceStore.
func NewDeviceStore() *DeviceStore {
	return &DeviceStore{records: make(map[string]store.DeviceRecord)}
}

func (s *DeviceStore) Put(_ context.Context, rec store.DeviceRecord, expectExists bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := string(rec.DeviceID)
	_, exists := s.records[key]
	if expectExists && !exists {
		return store.ErrNotFound
	}
	if !expectExists && exists {
		return store.ErrAlreadyExists
	}
	s.records[key] = rec
	return nil
}

func (s *DeviceStore) Get(_ context.Context, deviceID []byte) (store.DeviceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[string(deviceID)]
	if !ok {
		return store.DeviceRecord{}, store.ErrNotFound
	}
	return rec, nil
}

func (s *DeviceStore) List(_ context.Context) ([]store.DeviceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.DeviceRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out, nil
}

// MetadataStore is an in-memory, mutex-guarded store.MetadataStore.
type MetadataStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMetadataStore returns an empty MetadataStore.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{data: make(map[string]string)}
}

func (s *MetadataStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MetadataStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}
