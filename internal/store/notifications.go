package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// NotificationStore serves the notifications feed and tracks read state.
type NotificationStore struct {
	mu    sync.Mutex
	items []domain.Notification
}

func NewNotifications(seed []domain.Notification) *NotificationStore {
	items := make([]domain.Notification, len(seed))
	copy(items, seed)

	return &NotificationStore{items: items}
}

// Feed returns a snapshot of the feed in seed order.
func (s *NotificationStore) Feed() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Notification, len(s.items))
	copy(items, s.items)
	return items
}

func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read; unknown IDs are a no-op.
func (s *NotificationStore) MarkRead(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return
		}
	}
}

func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
}
