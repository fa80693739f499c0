package store

import (
	"sync"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// FavoritesStore keeps a deduplicated set of saved menu items, in the order
// they were first added.
type FavoritesStore struct {
	mu    sync.Mutex
	items []domain.MenuItem
	subs  []func([]domain.MenuItem)
}

func NewFavorites() *FavoritesStore {
	return &FavoritesStore{}
}

// Add saves item unless an entry with the same ID already exists.
func (s *FavoritesStore) Add(item domain.MenuItem) {
	s.mu.Lock()
	for _, existing := range s.items {
		if existing.ID == item.ID {
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, item)
	s.notifyLocked()
}

// Remove deletes the entry with the given ID; unknown IDs are a no-op.
func (s *FavoritesStore) Remove(itemID string) {
	s.mu.Lock()
	for i, existing := range s.items {
		if existing.ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notifyLocked()
			return
		}
	}
	s.mu.Unlock()
}

func (s *FavoritesStore) Clear() {
	s.mu.Lock()
	s.items = nil
	s.notifyLocked()
}

func (s *FavoritesStore) Contains(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == itemID {
			return true
		}
	}
	return false
}

// Items returns a snapshot in insertion order.
func (s *FavoritesStore) Items() []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *FavoritesStore) Subscribe(fn func([]domain.MenuItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// notifyLocked snapshots state, releases the lock and fans out to
// subscribers. Callers must hold s.mu and must not use it afterwards.
func (s *FavoritesStore) notifyLocked() {
	items := make([]domain.MenuItem, len(s.items))
	copy(items, s.items)
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(items)
	}
}
