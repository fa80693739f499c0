package httpapi

import (
	"net/http"

	"github.com/google/uuid"
)

// GET /notifications
func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": toNotificationDTOs(s.notifications.Feed()),
		"unread":        s.notifications.UnreadCount(),
	})
}

// POST /notifications/{id}/read
func (s *Server) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	s.notifications.MarkRead(id)
	writeJSON(w, http.StatusOK, map[string]int{"unread": s.notifications.UnreadCount()})
}

// POST /notifications/read-all
func (s *Server) handleNotificationsReadAll(w http.ResponseWriter, _ *http.Request) {
	s.notifications.MarkAllRead()
	writeJSON(w, http.StatusOK, map[string]int{"unread": 0})
}
