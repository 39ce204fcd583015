// Package session holds the explicit "who is logged in" state that is
// handed to the event repository, instead of a process-wide global.
package session

import (
	"sync"

	"github.com/dmitrijs2005/countdown/internal/models"
)

// Session is a weak reference to a user record: it stores only the email.
// A nil *Session behaves as logged out. Safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	email string
}

func New() *Session {
	return &Session{}
}

// Email returns the current user's normalized email, or "".
func (s *Session) Email() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Session) Active() bool {
	return s.Email() != ""
}

// Set is a no-op on a nil *Session.
func (s *Session) Set(email string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.email = models.NormalizeEmail(email)
	s.mu.Unlock()
}

func (s *Session) Clear() {
	s.Set("")
}
