package httpapi

import (
	"net/http"
)

// GET /favorites
func (s *Server) handleFavoritesGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toMenuItemDTOs(s.favorites.Items()))
}

// PUT /favorites/{id}
func (s *Server) handleFavoritesAdd(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupMenuItem(r.PathValue("id"))
	if !ok {
		writeErr(w, http.StatusNotFound, "menu item not found")
		return
	}

	s.favorites.Add(item)
	writeJSON(w, http.StatusOK, toMenuItemDTOs(s.favorites.Items()))
}

// DELETE /favorites/{id}
func (s *Server) handleFavoritesRemove(w http.ResponseWriter, r *http.Request) {
	s.favorites.Remove(r.PathValue("id"))
	writeJSON(w, http.StatusOK, toMenuItemDTOs(s.favorites.Items()))
}
