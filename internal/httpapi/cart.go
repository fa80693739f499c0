package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// GET /cart
func (s *Server) handleCartGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toCartDTO(s.cart.State()))
}

// POST /cart/items {"id": "1"}
func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := s.lookupMenuItem(body.ID)
	if !ok {
		writeErr(w, http.StatusNotFound, "menu item not found")
		return
	}

	s.cart.Add(item)
	writeJSON(w, http.StatusOK, toCartDTO(s.cart.State()))
}

// PUT /cart/items/{id} {"quantity": 3}
func (s *Server) handleCartSetQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.cart.SetQuantity(r.PathValue("id"), body.Quantity)
	writeJSON(w, http.StatusOK, toCartDTO(s.cart.State()))
}

// DELETE /cart/items/{id}
func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	s.cart.Remove(r.PathValue("id"))
	writeJSON(w, http.StatusOK, toCartDTO(s.cart.State()))
}

// DELETE /cart
func (s *Server) handleCartClear(w http.ResponseWriter, _ *http.Request) {
	s.cart.Clear()
	writeJSON(w, http.StatusOK, toCartDTO(s.cart.State()))
}

func (s *Server) lookupMenuItem(id string) (domain.MenuItem, bool) {
	for _, candidate := range s.menu {
		if candidate.ID == id {
			return candidate, true
		}
	}
	return domain.MenuItem{}, false
}
