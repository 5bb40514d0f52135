package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"contentshare/internal/model"
)

const bearerPrefix = "Bearer "

var (
	// ErrNoSession is returned when no login has populated the session slot.
	ErrNoSession = errors.New("no stored session token, have you logged in?")
	// ErrMalformedHeader is returned when the Authorization header is missing
	// or lacks the Bearer prefix.
	ErrMalformedHeader = errors.New("no bearer token provided in the request")
	// ErrTokenMismatch is returned when the presented token does not match
	// the stored session token.
	ErrTokenMismatch = errors.New("authentication token is invalid")
	// ErrInvalidIdentity is returned when the session resolves to no valid user.
	ErrInvalidIdentity = errors.New("invalid user")
)

// Session is the credential held in the server-wide slot.
type Session struct {
	Token     string
	User      *model.User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionStore holds at most one session credential for the whole process:
// the one written by the most recent successful login. It deliberately
// conflates "current request's caller" with "last login server-wide";
// concurrent logins overwrite each other. Callers must treat this as a
// single-operator session, not a multi-user session table.
type SessionStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Put overwrites the slot with a freshly issued credential.
func (s *SessionStore) Put(token string, user *model.User, issuedAt, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &Session{
		Token:     token,
		User:      user,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
}

// Current returns the stored session, or nil when no login has happened.
func (s *SessionStore) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Clear empties the slot.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Validate compares the presented Authorization header value against the
// stored session credential and resolves the authenticated user.
//
// The comparison is an exact string match against the slot. ExpiresAt is
// recorded at login but not consulted here: a token stays valid for as long
// as it matches the slot. Validation never mutates the slot.
func (s *SessionStore) Validate(header string) (*model.User, error) {
	sess := s.Current()
	if sess == nil {
		return nil, ErrNoSession
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrMalformedHeader
	}
	presented := strings.TrimPrefix(header, bearerPrefix)

	if presented != sess.Token {
		return nil, ErrTokenMismatch
	}

	if sess.User == nil || sess.User.ID == 0 {
		return nil, ErrInvalidIdentity
	}
	return sess.User, nil
}
