package repository

import (
	"context"
	"sync"

	"github.com/osse101/scribble/internal/domain"
)

// MemStore is an in-memory BlobStore, used in tests and for dry runs
type MemStore struct {
	mu    sync.Mutex
	blobs map[domain.CollectionID][]byte
}

// NewMemStore creates an empty MemStore
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[domain.CollectionID][]byte)}
}

// Read implements BlobStore
func (m *MemStore) Read(_ context.Context, id domain.CollectionID) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[id]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return append([]byte(nil), data...), nil
}

// Write implements BlobStore
func (m *MemStore) Write(_ context.Context, id domain.CollectionID, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[id] = append([]byte(nil), data...)
	return nil
}

// Put seeds a raw blob, bypassing encoding
func (m *MemStore) Put(id domain.CollectionID, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[id] = []byte(data)
}

// Get returns the raw blob and whether it exists
func (m *MemStore) Get(id domain.CollectionID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[id]
	return string(data), ok
}
