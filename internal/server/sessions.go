package server

import (
	"sync"

	"github.com/google/uuid"
)

// sessionStore holds the active bearer tokens. The portal runs with a
// simulated identity layer: any login issues a token bound to the demo
// account, and tokens live until logout or process exit.
type sessionStore struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]struct{})}
}

func (s *sessionStore) Create() string {
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token
}

func (s *sessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *sessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
