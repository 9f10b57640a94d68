package visitor

import "sync"

// SyncMap is a thread-safe map used as a type keyed cache
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// NewSyncMap creates an empty map
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}

// Get returns a value from the map
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	v, ok := m.m[k]
	m.mux.RUnlock()
	return v, ok
}

// Put adds a value to the map
func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	m.m[k] = v
	m.mux.Unlock()
}

// GetOrCompute returns cached value or stores the computed one, failed computations are not cached.
// Concurrent callers may compute the same key; the first stored value wins.
func (m *SyncMap[K, V]) GetOrCompute(k K, compute func() (V, error)) (V, error) {
	if v, ok := m.Get(k); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if prev, ok := m.m[k]; ok {
		return prev, nil
	}
	m.m[k] = v
	return v, nil
}

// Len returns number of entries
func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}
