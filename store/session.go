package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/AbdullahAbukalaf/real-estate-reign/models"
	"github.com/AbdullahAbukalaf/real-estate-reign/storage"
)

var ErrMissingCredentials = errors.New("email and password are required")

// Sessions holds at most one authenticated identity and mirrors it to
// durable storage. A restored session is trusted until explicit logout;
// there is no expiry.
type Sessions struct {
	mu      sync.RWMutex
	current *models.Session
	kv      storage.KV
	log     *logrus.Logger
}

func NewSessions(ctx context.Context, kv storage.KV, log *logrus.Logger) *Sessions {
	s := &Sessions{kv: kv, log: log}

	raw, err := kv.Get(ctx, storage.SessionKey)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Warnf("Failed to read session from storage: %v", err)
		}
		return s
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Warnf("Discarding unreadable session entry: %v", err)
		return s
	}
	if session.Email == "" {
		log.Warn("Discarding session entry without an email")
		return s
	}

	s.current = &session
	return s
}

// Login accepts any non-empty credential pair and fabricates a session from
// the email. Real verification belongs to an authentication backend that is
// not part of this system; it would slot in here without changing the
// contract.
func (s *Sessions) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	session := &models.Session{Email: email}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, storage.SessionKey, raw); err != nil {
		s.log.Errorf("Failed to persist session: %v", err)
		return nil, err
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.log.Infof("User logged in: %s", email)
	return &models.Session{Email: session.Email, Name: session.Name}, nil
}

// Logout clears the session from memory and storage.
func (s *Sessions) Logout(ctx context.Context) error {
	if err := s.kv.Del(ctx, storage.SessionKey); err != nil {
		s.log.Errorf("Failed to clear persisted session: %v", err)
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.log.Info("User logged out")
	return nil
}

// Current returns a copy of the active session, or nil when unauthenticated.
func (s *Sessions) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	return &models.Session{Email: s.current.Email, Name: s.current.Name}
}

func (s *Sessions) IsAuthenticated() bool {
	return s.Current() != nil
}
