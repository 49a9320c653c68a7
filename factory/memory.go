package factory

import "sync"

// MemoryRepository is an in-memory Repository safe for concurrent use.
type MemoryRepository[T any, ID comparable] struct {
	mu    sync.RWMutex
	items map[ID]T
}

func NewMemoryRepository[T any, ID comparable]() *MemoryRepository[T, ID] {
	return &MemoryRepository[T, ID]{items: make(map[ID]T)}
}

func (r *MemoryRepository[T, ID]) Find(id ID) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]

	return v, ok, nil
}

func (r *MemoryRepository[T, ID]) Save(id ID, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[id] = v
}

func (r *MemoryRepository[T, ID]) Delete(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
}

func (r *MemoryRepository[T, ID]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
