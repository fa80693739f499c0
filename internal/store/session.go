package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/nikolayk812/foodcart-demo/internal/domain"
	"github.com/nikolayk812/foodcart-demo/internal/port"
)

// Storage keys shared with the original client.
const (
	keyUser     = "user"
	keyLoggedIn = "isLoggedIn"
)

type SessionStatus int

const (
	// SessionLoading is the initial status while the persisted session is
	// being restored.
	SessionLoading SessionStatus = iota
	SessionUnauthenticated
	SessionAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the current authentication state. User is non-nil exactly when
// Status is SessionAuthenticated.
type Session struct {
	Status SessionStatus
	User   *domain.User
}

// SessionStore is a three-state machine (loading, unauthenticated,
// authenticated) backed by a fallible key-value collaborator.
//
// Durability is best effort: when a persistence call fails the in-memory
// transition still happens and the failure is only logged. Load, Login and
// Logout each hold an operation lock across the whole persistence round
// trip, so overlapping calls run one after another and the final state is
// that of the last caller.
type SessionStore struct {
	kv     port.KVStore
	logger *zap.Logger

	opMu sync.Mutex

	mu      sync.Mutex
	session Session
	subs    []func(Session)
}

func NewSession(kv port.KVStore, logger *zap.Logger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionStore{
		kv:      kv,
		logger:  logger,
		session: Session{Status: SessionLoading},
	}
}

// Load restores the persisted session. Absent, unreadable or malformed data
// all settle the store to unauthenticated.
func (s *SessionStore) Load(ctx context.Context) Session {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	userJSON, ok, err := s.kv.Get(ctx, keyUser)
	if err != nil {
		s.logger.Warn("loading persisted user failed", zap.Error(err))
		return s.transition(Session{Status: SessionUnauthenticated})
	}
	if !ok {
		return s.transition(Session{Status: SessionUnauthenticated})
	}

	flag, ok, err := s.kv.Get(ctx, keyLoggedIn)
	if err != nil {
		s.logger.Warn("loading login flag failed", zap.Error(err))
		return s.transition(Session{Status: SessionUnauthenticated})
	}
	if !ok || flag != "true" {
		return s.transition(Session{Status: SessionUnauthenticated})
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		// Corrupt record is treated the same as an absent one.
		s.logger.Warn("persisted user record is malformed", zap.Error(err))
		return s.transition(Session{Status: SessionUnauthenticated})
	}

	return s.transition(Session{Status: SessionAuthenticated, User: &user})
}

// Login persists the user record and the login flag, then authenticates
// in-memory regardless of whether persistence succeeded.
func (s *SessionStore) Login(ctx context.Context, user domain.User) Session {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	userJSON, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("encoding user record failed", zap.Error(err))
	} else if err := s.kv.Set(ctx, keyUser, string(userJSON)); err != nil {
		s.logger.Warn("persisting user record failed", zap.Error(err))
	} else if err := s.kv.Set(ctx, keyLoggedIn, "true"); err != nil {
		s.logger.Warn("persisting login flag failed", zap.Error(err))
	}

	return s.transition(Session{Status: SessionAuthenticated, User: &user})
}

// Logout clears the persisted record and flag, then drops to
// unauthenticated with the same best-effort policy as Login.
func (s *SessionStore) Logout(ctx context.Context) Session {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.kv.Remove(ctx, keyUser); err != nil {
		s.logger.Warn("removing user record failed", zap.Error(err))
	}
	if err := s.kv.Remove(ctx, keyLoggedIn); err != nil {
		s.logger.Warn("removing login flag failed", zap.Error(err))
	}

	return s.transition(Session{Status: SessionUnauthenticated})
}

func (s *SessionStore) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

func (s *SessionStore) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

func (s *SessionStore) transition(next Session) Session {
	s.mu.Lock()
	s.session = next
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}

	return next
}
