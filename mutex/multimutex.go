package mutex

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const DefaultShardCount = 32

type multiMutexShard struct {
	mu          sync.Mutex
	mutexes     map[string]Mutex
	mutexCounts map[string]int
}

// MultiMutex keeps one Mutex per key for as long as some caller holds or waits on it.
// Entries are dropped when their reference count reaches zero.
type MultiMutex struct {
	mutexFactory MutexFactory
	shards       []multiMutexShard
	mask         uint64
}

func NewMultiMutex(mutexFactory MutexFactory) *MultiMutex {
	return NewShardedMultiMutex(mutexFactory, DefaultShardCount)
}

// NewShardedMultiMutex panics unless shardCount is a positive power of two.
func NewShardedMultiMutex(mutexFactory MutexFactory, shardCount int) *MultiMutex {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		panic("shard count must be a positive power of 2")
	}

	shards := make([]multiMutexShard, shardCount)
	for i := range shards {
		shards[i].mutexes = make(map[string]Mutex)
		shards[i].mutexCounts = make(map[string]int)
	}

	return &MultiMutex{
		mutexFactory: mutexFactory,
		shards:       shards,
		mask:         uint64(shardCount - 1),
	}
}

func (m *MultiMutex) Lock(ctx context.Context, key string) error {
	mutex := m.getMutexForLock(key)
	if err := mutex.Lock(ctx); err != nil {
		// Drop the reference taken above; the mutex was never held.
		m.getMutexForUnlock(key)
		return err
	}
	return nil
}

func (m *MultiMutex) Unlock(ctx context.Context, key string) error {
	return m.getMutexForUnlock(key).Unlock(ctx)
}

// Len returns the number of keys currently held or waited on.
func (m *MultiMutex) Len() int {
	n := 0
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		n += len(s.mutexes)
		s.mu.Unlock()
	}
	return n
}

func (m *MultiMutex) shard(key string) *multiMutexShard {
	return &m.shards[xxhash.Sum64String(key)&m.mask]
}

func (m *MultiMutex) getMutexForLock(key string) Mutex {
	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	var mutex Mutex
	if s.mutexCounts[key] == 0 {
		mutex = m.mutexFactory.Make(key)
		s.mutexes[key] = mutex
	} else {
		mutex = s.mutexes[key]
	}
	s.mutexCounts[key]++

	return mutex
}

func (m *MultiMutex) getMutexForUnlock(key string) Mutex {
	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	mutex, ok := s.mutexes[key]
	if !ok {
		panic("attempting to obtain unset mutex for unlock: " + key)
	}

	s.mutexCounts[key]--
	if s.mutexCounts[key] == 0 {
		delete(s.mutexes, key)
		delete(s.mutexCounts, key)
	}

	return mutex
}
