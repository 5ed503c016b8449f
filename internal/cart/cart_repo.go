package cart

import "sync"

// Repository hands out the per-session Store. Carts live for the process
// lifetime only; there is nothing behind this map.
type Repository interface {
	Get(sessionID string) (*Store, bool)
	GetOrCreate(sessionID string) *Store
	Delete(sessionID string)
}

type memoryRepository struct {
	mu        sync.RWMutex
	stores    map[string]*Store
	observers []Observer
}

// NewRepository builds an in-memory repository. Every observer given here is
// subscribed to each store the repository creates, so process-wide listeners
// see mutations from every session.
func NewRepository(observers ...Observer) Repository {
	return &memoryRepository{
		stores:    make(map[string]*Store),
		observers: observers,
	}
}

func (r *memoryRepository) Get(sessionID string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[sessionID]
	return store, ok
}

func (r *memoryRepository) GetOrCreate(sessionID string) *Store {
	r.mu.RLock()
	store, ok := r.stores[sessionID]
	r.mu.RUnlock()
	if ok {
		return store
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if store, ok := r.stores[sessionID]; ok {
		return store
	}
	store = NewStore()
	for _, fn := range r.observers {
		store.Subscribe(fn)
	}
	r.stores[sessionID] = store
	return store
}

func (r *memoryRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
}
