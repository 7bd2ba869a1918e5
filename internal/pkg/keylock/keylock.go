// Package keylock provides a sharded per-key mutex table.
//
// Entity resolution serializes writers per canonical key so that two
// concurrent ingests of the same entity never race on the
// lookup-then-insert step. Keys hash onto a fixed shard table, so
// memory stays bounded regardless of key cardinality.
package keylock

import (
	"hash/fnv"
	"sync"
)

// DefaultShards is the default size of the shard table.
const DefaultShards = 256

// KeyLock is a fixed-size table of mutexes indexed by key hash.
// Distinct keys may share a shard; that only costs contention, never
// correctness.
type KeyLock struct {
	shards []sync.Mutex
}

// New creates a KeyLock with the given number of shards.
// A non-positive count falls back to DefaultShards.
func New(shards int) *KeyLock {
	if shards <= 0 {
		shards = DefaultShards
	}
	return &KeyLock{shards: make([]sync.Mutex, shards)}
}

func (k *KeyLock) shard(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &k.shards[h.Sum32()%uint32(len(k.shards))]
}

// Lock acquires the shard lock for key.
func (k *KeyLock) Lock(key string) {
	k.shard(key).Lock()
}

// Unlock releases the shard lock for key.
func (k *KeyLock) Unlock(key string) {
	k.shard(key).Unlock()
}

// WithLock runs fn while holding the shard lock for key.
func (k *KeyLock) WithLock(key string, fn func() error) error {
	m := k.shard(key)
	m.Lock()
	defer m.Unlock()
	return fn()
}
