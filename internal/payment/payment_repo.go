package payment

import "sync"

// Repository hands out the per-session Selection, defaulting to cash.
// Selections are never persisted.
type Repository interface {
	Get(sessionID string) (*Selection, bool)
	GetOrCreate(sessionID string) *Selection
	Delete(sessionID string)
}

type memoryRepository struct {
	mu         sync.RWMutex
	selections map[string]*Selection
}

func NewRepository() Repository {
	return &memoryRepository{selections: make(map[string]*Selection)}
}

func (r *memoryRepository) Get(sessionID string) (*Selection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sel, ok := r.selections[sessionID]
	return sel, ok
}

func (r *memoryRepository) GetOrCreate(sessionID string) *Selection {
	r.mu.RLock()
	sel, ok := r.selections[sessionID]
	r.mu.RUnlock()
	if ok {
		return sel
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sel, ok := r.selections[sessionID]; ok {
		return sel
	}
	sel = NewSelection()
	r.selections[sessionID] = sel
	return sel
}

func (r *memoryRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selections, sessionID)
}
