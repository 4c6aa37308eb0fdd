// Package session owns the per-session conversation history: a keyed
// table of bounded, role-tagged message logs. Sessions are created lazily
// on first reference and live for the process lifetime.
package session

import (
	"sync"

	"github.com/apricot12/concierge/internal/domain"
)

// Store is a keyed conversation-history table. Cross-session access is
// safe for concurrent use; within one session callers are expected to
// have at most one chat request in flight.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]domain.Message
	limit    int
}

// NewStore creates a Store with the standard retention bound.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]domain.Message),
		limit:    domain.MaxHistoryMessages,
	}
}

// History returns a copy of the session's retained messages, oldest
// first. An unknown key yields an empty history, not an error.
func (s *Store) History(key string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[key]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}

// AppendTurn commits one completed exchange: the user message and the
// assistant's reply, in order, then trims the oldest messages so the
// session never retains more than the bound. Callers append only after
// the reply is fully computed so a failed request leaves no partial
// history behind.
func (s *Store) AppendTurn(key string, user, assistant domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append(s.sessions[key], user, assistant)
	if excess := len(msgs) - s.limit; excess > 0 {
		msgs = append([]domain.Message(nil), msgs[excess:]...)
	}
	s.sessions[key] = msgs
}

// Clear resets the session's conversation history. The session key itself
// remains valid; the next reference starts a fresh history.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Window returns up to n of the most recent messages from history,
// preserving order. n <= 0 yields an empty window.
func Window(history []domain.Message, n int) []domain.Message {
	if n <= 0 {
		return nil
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
