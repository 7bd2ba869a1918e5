package graph

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for engine tests.
type MemoryStore struct {
	mu    sync.RWMutex
	edges map[string]*Edge       // id -> edge
	byTri map[string]string      // source|target|type -> id
	links map[string]*DomainLink // from|to -> link (automatic rows only)
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		edges: make(map[string]*Edge),
		byTri: make(map[string]string),
		links: make(map[string]*DomainLink),
	}
}

func triKey(src, tgt, typ string) string { return src + "|" + tgt + "|" + typ }

// FindEdge implements Store.
func (m *MemoryStore) FindEdge(_ context.Context, sourceID, targetID, relType string) (*Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byTri[triKey(sourceID, targetID, relType)]
	if !ok {
		return nil, nil
	}
	cp := *m.edges[id]
	return &cp, nil
}

// CreateEdge implements Store.
func (m *MemoryStore) CreateEdge(_ context.Context, e *Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.edges[cp.ID] = &cp
	m.byTri[triKey(cp.SourceID, cp.TargetID, cp.Type)] = cp.ID
	return nil
}

// UpdateEdge implements Store.
func (m *MemoryStore) UpdateEdge(_ context.Context, id string, weight, confidence float64, observations int, lastObjectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.edges[id]; ok {
		e.Weight = weight
		e.Confidence = confidence
		e.Observations = observations
		e.LastObjectID = lastObjectID
	}
	return nil
}

// UpsertDomainLink implements Store.
func (m *MemoryStore) UpsertDomainLink(_ context.Context, l *DomainLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := l.FromDomainID + "|" + l.ToDomainID
	if existing, ok := m.links[key]; ok {
		existing.Strength = l.Strength
		existing.SharedEntityCount = l.SharedEntityCount
		existing.Explanation = l.Explanation
		return nil
	}
	cp := *l
	m.links[key] = &cp
	return nil
}

// Edges returns a copy of all stored edges.
func (m *MemoryStore) Edges() []Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, *e)
	}
	return out
}

// DomainLinks returns a copy of all stored automatic links.
func (m *MemoryStore) DomainLinks() []DomainLink {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]DomainLink, 0, len(m.links))
	for _, l := range m.links {
		out = append(out, *l)
	}
	return out
}
