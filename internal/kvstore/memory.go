package kvstore

import (
	"context"
	"sync"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

// MemoryStore keeps values in a map guarded by a RWMutex
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

var _ Store = (*MemoryStore)(nil)

// Get returns a copy of the stored value
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkContext(ctx, "memory", "get"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, errors.NotFoundf("key %s not found", key)
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	return m.Apply(ctx, []Op{SetOp(key, value)})
}

// Delete removes keys
func (m *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	ops := make([]Op, len(keys))
	for i, key := range keys {
		ops[i] = DeleteOp(key)
	}
	return m.Apply(ctx, ops)
}

// Apply runs the batch under a single write lock
func (m *MemoryStore) Apply(ctx context.Context, ops []Op) error {
	if err := checkContext(ctx, "memory", "apply"); err != nil {
		return err
	}

	if err := validateOps(ops); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, op := range ops {
		if op.Kind == OpSet {
			m.data[op.Key] = append([]byte(nil), op.Value...)
		} else {
			delete(m.data, op.Key)
		}
	}
	return nil
}

// Keys returns the stored keys, in no particular order
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
