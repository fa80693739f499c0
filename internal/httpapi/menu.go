package httpapi

import (
	"net/http"

	"github.com/nikolayk812/foodcart-demo/internal/catalog"
)

// GET /menu?category=Biryani&q=chicken
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	items := catalog.Filter(s.menu, category, query)

	writeJSON(w, http.StatusOK, toMenuItemDTOs(items))
}

// GET /menu/categories
func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories(s.menu))
}

// GET /menu/{id}
func (s *Server) handleMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupMenuItem(r.PathValue("id"))
	if !ok {
		writeErr(w, http.StatusNotFound, "menu item not found")
		return
	}

	writeJSON(w, http.StatusOK, toMenuItemDTO(item))
}
