// Package httpapi exposes the stores over JSON. It stands in for the mobile
// screens: every endpoint maps to one user interaction.
package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/store"
)

type Server struct {
	menu          []domain.MenuItem
	cart          *store.CartStore
	favorites     *store.FavoritesStore
	session       *store.SessionStore
	notifications *store.NotificationStore
	logger        *zap.Logger
}

func NewServer(
	menu []domain.MenuItem,
	cart *store.CartStore,
	favorites *store.FavoritesStore,
	session *store.SessionStore,
	notifications *store.NotificationStore,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		menu:          menu,
		cart:          cart,
		favorites:     favorites,
		session:       session,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /menu", s.handleMenu)
	mux.HandleFunc("GET /menu/categories", s.handleCategories)
	mux.HandleFunc("GET /menu/{id}", s.handleMenuItem)

	mux.HandleFunc("GET /cart", s.handleCartGet)
	mux.HandleFunc("POST /cart/items", s.handleCartAdd)
	mux.HandleFunc("PUT /cart/items/{id}", s.handleCartSetQuantity)
	mux.HandleFunc("DELETE /cart/items/{id}", s.handleCartRemove)
	mux.HandleFunc("DELETE /cart", s.handleCartClear)

	mux.HandleFunc("GET /favorites", s.handleFavoritesGet)
	mux.HandleFunc("PUT /favorites/{id}", s.handleFavoritesAdd)
	mux.HandleFunc("DELETE /favorites/{id}", s.handleFavoritesRemove)

	mux.HandleFunc("GET /auth/session", s.handleSessionGet)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/verify", s.handleVerify)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)

	mux.HandleFunc("GET /notifications", s.handleNotifications)
	mux.HandleFunc("POST /notifications/{id}/read", s.handleNotificationRead)
	mux.HandleFunc("POST /notifications/read-all", s.handleNotificationsReadAll)

	return mux
}
