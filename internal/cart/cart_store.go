package cart

import "sync"

// Item is one cart entry. UnitPrice is centavos.
type Item struct {
	ID        string
	Name      string
	UnitPrice int64
	Quantity  int
}

// Observer runs synchronously after a committed mutation, once invariants
// hold again. The surrounding layer uses it to recompute totals.
type Observer func()

// Store owns the canonical item collection for one session: ids unique,
// every quantity >= 1, insertion order preserved for display. Mutations are
// driven by a single logical actor; the mutex only shields the map from the
// HTTP layer's goroutines, interleaved updates carry no meaning.
type Store struct {
	mu        sync.Mutex
	items     map[string]*Item
	order     []string
	observers []Observer
}

func NewStore() *Store {
	return &Store{items: make(map[string]*Item)}
}

// Subscribe registers fn for notification after every mutation.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// AddItem inserts the item with quantity 1, or bumps the existing entry's
// quantity by one. The same id never produces a second entry.
func (s *Store) AddItem(item Item) {
	s.mu.Lock()
	if existing, ok := s.items[item.ID]; ok {
		existing.Quantity++
	} else {
		item.Quantity = 1
		s.items[item.ID] = &item
		s.order = append(s.order, item.ID)
	}
	obs := s.observerList()
	s.mu.Unlock()
	notify(obs)
}

// RemoveItem deletes the entry if present. An unknown id is a stale UI
// reference, not an error, and changes nothing.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	_, ok := s.items[id]
	var obs []Observer
	if ok {
		s.deleteLocked(id)
		obs = s.observerList()
	}
	s.mu.Unlock()
	notify(obs)
}

// UpdateQuantity sets the entry's quantity when quantity >= 1 and removes
// the entry entirely otherwise; an entry is never kept at zero. Unknown ids
// change nothing.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	item, ok := s.items[id]
	var obs []Observer
	if ok {
		if quantity >= 1 {
			item.Quantity = quantity
		} else {
			s.deleteLocked(id)
		}
		obs = s.observerList()
	}
	s.mu.Unlock()
	notify(obs)
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.mu.Lock()
	changed := len(s.items) > 0
	s.items = make(map[string]*Item)
	s.order = nil
	var obs []Observer
	if changed {
		obs = s.observerList()
	}
	s.mu.Unlock()
	notify(obs)
}

// Snapshot returns the entries in insertion order. The copy is the caller's
// to keep; internal state is never exposed.
func (s *Store) Snapshot() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// Get returns a copy of the entry for id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) deleteLocked(id string) {
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) observerList() []Observer {
	obs := make([]Observer, len(s.observers))
	copy(obs, s.observers)
	return obs
}

// notify runs outside the store lock so observers may read the store.
func notify(obs []Observer) {
	for _, fn := range obs {
		fn()
	}
}
