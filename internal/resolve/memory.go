package resolve

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store for engine tests and local tooling.
// It mirrors the semantics of the ent-backed store without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*Record
	byKey   map[string]string // canonical_key|entity_type -> id
	repoint [][2]string       // recorded (from, to) pairs
	clock   func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:  make(map[string]*Record),
		byKey: make(map[string]string),
		clock: time.Now,
	}
}

func storeKey(key, entityType string) string {
	return key + "|" + entityType
}

// FindByKey implements Store.
func (m *MemoryStore) FindByKey(_ context.Context, key, entityType string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byKey[storeKey(key, entityType)]
	if !ok {
		return nil, nil
	}
	cp := *m.byID[id]
	return &cp, nil
}

// Create implements Store.
func (m *MemoryStore) Create(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = m.clock()
	}
	m.byID[cp.ID] = &cp
	m.byKey[storeKey(cp.CanonicalKey, cp.EntityType)] = cp.ID
	return nil
}

// RaiseConfidence implements Store.
func (m *MemoryStore) RaiseConfidence(_ context.Context, id string, c float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.byID[id]; ok && c > rec.Confidence {
		rec.Confidence = c
	}
	return nil
}

// Repoint implements Store. The memory store has no relationship rows;
// it records the call so tests can assert on merge behavior.
func (m *MemoryStore) Repoint(_ context.Context, fromID, toID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repoint = append(m.repoint, [2]string{fromID, toID})
	return nil
}

// Delete implements Store. If another record shares the deleted row's
// key (mid-merge state), the key mapping falls back to the survivor.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byID[id]
	if !ok {
		return nil
	}
	delete(m.byID, id)
	k := storeKey(rec.CanonicalKey, rec.EntityType)
	if m.byKey[k] == id {
		delete(m.byKey, k)
		for oid, o := range m.byID {
			if storeKey(o.CanonicalKey, o.EntityType) == k {
				m.byKey[k] = oid
				break
			}
		}
	}
	return nil
}

// Get returns the record with the given id, or nil.
func (m *MemoryStore) Get(id string) *Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.byID[id]; ok {
		cp := *rec
		return &cp
	}
	return nil
}

// Len returns the number of stored entities.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// Repointed returns the recorded (from, to) repoint calls.
func (m *MemoryStore) Repointed() [][2]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([][2]string, len(m.repoint))
	copy(out, m.repoint)
	return out
}
