package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a process-local map. Sessions do not
// survive restarts; clients simply log in again.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Record)}
}

func (m *MemoryStore) Put(ctx context.Context, id string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = rec
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.data[id]
	if !ok {
		return Record{}, false, nil
	}
	if time.Since(rec.CreatedAt) > TTL {
		delete(m.data, id)
		return Record{}, false, nil
	}
	return rec, true, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}
