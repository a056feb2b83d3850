package services

import (
	"laundrypro/internal/models"
	"laundrypro/internal/store"
)

// SessionGuard decides whether a protected view may proceed. It only reads
// the session record; navigation on failure is the caller's job.
type SessionGuard struct {
	store store.Store
}

// NewSessionGuard creates a new SessionGuard.
func NewSessionGuard(st store.Store) *SessionGuard {
	return &SessionGuard{store: st}
}

// IsAuthenticated reports whether a parseable session record is present.
func (g *SessionGuard) IsAuthenticated() bool {
	session, err := g.store.Session()
	return err == nil && session != nil
}

// Require returns the logged-in user, or ErrUnauthenticated for the caller
// to map to a login redirect.
func (g *SessionGuard) Require() (*models.User, error) {
	session, err := g.store.Session()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrUnauthenticated
	}
	return session, nil
}
