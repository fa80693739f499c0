package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
)

// GET /auth/session
func (s *Server) handleSessionGet(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toSessionDTO(s.session.Current()))
}

// POST /auth/login {"email": "...", "password": "..."}
//
// The backend is mocked: any well-formed credentials get an OTP "sent".
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(body.Email)
	if email == "" || !strings.Contains(email, "@") {
		writeErr(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if body.Password == "" {
		writeErr(w, http.StatusBadRequest, "password is required")
		return
	}

	s.logger.Info("otp issued", zap.String("email", email))
	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "verification code sent",
	})
}

// POST /auth/verify {"email": "...", "otp": "123456"}
//
// Any six-digit code passes, as in the demo client.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(body.Email)
	if email == "" {
		writeErr(w, http.StatusBadRequest, "email is required")
		return
	}
	if !isSixDigits(body.OTP) {
		writeErr(w, http.StatusBadRequest, "enter the complete 6-digit code")
		return
	}

	session := s.session.Login(r.Context(), demoUser(email))
	writeJSON(w, http.StatusOK, toSessionDTO(session))
}

// POST /auth/logout
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	session := s.session.Logout(r.Context())
	writeJSON(w, http.StatusOK, toSessionDTO(session))
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func demoUser(email string) domain.User {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	return domain.User{
		ID:            uuid.New(),
		Name:          name,
		Email:         email,
		MemberSince:   time.Now(),
		TotalOrders:   0,
		LoyaltyPoints: 100,
	}
}
