package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/foodcart-demo/internal/catalog"
	"github.com/nikolayk812/foodcart-demo/internal/store"
)

func TestNotificationsFeedOrderAndUnread(t *testing.T) {
	seed := catalog.Feed()
	s := store.NewNotifications(seed)

	feed := s.Feed()
	require.Len(t, feed, len(seed))
	for i := range feed {
		assert.Equal(t, seed[i].Title, feed[i].Title)
	}

	want := 0
	for _, n := range seed {
		if !n.Read {
			want++
		}
	}
	assert.Equal(t, want, s.UnreadCount())
}

func TestNotificationsMarkRead(t *testing.T) {
	s := store.NewNotifications(catalog.Feed())

	before := s.UnreadCount()
	require.Positive(t, before)

	var unreadID uuid.UUID
	for _, n := range s.Feed() {
		if !n.Read {
			unreadID = n.ID
			break
		}
	}

	s.MarkRead(unreadID)
	assert.Equal(t, before-1, s.UnreadCount())

	s.MarkRead(unreadID) // already read: no change
	assert.Equal(t, before-1, s.UnreadCount())

	s.MarkRead(uuid.New()) // unknown: no-op
	assert.Equal(t, before-1, s.UnreadCount())
}

func TestNotificationsMarkAllRead(t *testing.T) {
	s := store.NewNotifications(catalog.Feed())

	s.MarkAllRead()
	assert.Zero(t, s.UnreadCount())
}

func TestNotificationsSeedIsDetached(t *testing.T) {
	seed := catalog.Feed()
	s := store.NewNotifications(seed)

	seed[0].Title = "mutated"
	assert.NotEqual(t, "mutated", s.Feed()[0].Title)
}
