package storage

import (
	"urbanfit-store/internal/infrastructure/kv"
	"urbanfit-store/internal/infrastructure/logger"
)

const visitedKey = "urbanFitVisited"

// SessionStore holds session-scoped flags. Backed by an in-memory kv.Store,
// it forgets everything when the session ends, which is what gates the
// welcome overlay to once per session.
type SessionStore struct {
	store  kv.Store
	logger *logger.Logger
}

func NewSessionStore(store kv.Store, logger *logger.Logger) *SessionStore {
	return &SessionStore{
		store:  store,
		logger: logger,
	}
}

// Visited reports whether the welcome overlay has already been shown this
// session. A missing flag means a fresh session.
func (s *SessionStore) Visited() bool {
	value, err := s.store.Get(visitedKey)
	if err != nil {
		return false
	}
	return string(value) == "true"
}

func (s *SessionStore) MarkVisited() {
	if err := s.store.Set(visitedKey, []byte("true")); err != nil {
		s.logger.Warn("Failed to persist visited flag", "error", err)
	}
}
