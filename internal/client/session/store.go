// Package session is the single source of truth for "who is logged in and
// with what authority". It owns the merge rules between the locally cached
// identity and server-fetched truth.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/aigymlabs/fitcoach/internal/client/models"
	"github.com/aigymlabs/fitcoach/internal/client/repositories/identity"
	"github.com/aigymlabs/fitcoach/internal/common"
)

var (
	// ErrCacheAbsent is returned by RestoreFromCache when no snapshot exists.
	ErrCacheAbsent = errors.New("no cached identity")

	// ErrNoSession is returned by operations that require a logged-in session.
	ErrNoSession = errors.New("no active session")
)

// Session is the in-memory authenticated identity.
//
// UserID is set once at login (or restore) and never overwritten by merges.
// IsAdmin and Profile are replaced wholesale by each successful identity
// fetch. Provisional marks a session restored from cache that has not yet
// been confirmed by the server; it unlocks an identity-fetch attempt and
// nothing more.
type Session struct {
	UserID      int64           `json:"user_id"`
	Username    string          `json:"username"`
	IsAdmin     bool            `json:"is_admin"`
	Profile     *models.Profile `json:"profile,omitempty"`
	Provisional bool            `json:"-"`
}

// Store holds the current Session and keeps the persisted snapshot in sync.
// All mutation goes through its methods; callers never assign fields
// directly.
type Store struct {
	mu    sync.Mutex
	cur   *Session
	cache identity.Repository
}

func NewStore(cache identity.Repository) *Store {
	return &Store{cache: cache}
}

// Current returns a copy of the session and whether one exists.
func (s *Store) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return Session{}, false
	}
	return *s.cur, true
}

// LoggedIn reports whether a session (confirmed or provisional) exists.
func (s *Store) LoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// SetFromLogin establishes a new session from a login response and persists
// a snapshot so the identity survives a restart.
func (s *Store) SetFromLogin(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	s.cur = &Session{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	snap := *s.cur
	s.mu.Unlock()

	return s.persist(ctx, snap)
}

// MergeFreshProfile replaces the profile and username with server truth.
//
// IsAdmin follows the codified fallback chain: the server's is_admin when
// the field is present, the previous session's value otherwise. It is never
// upgraded to true without the server (or the login response) asserting it.
// UserID is preserved from the prior session.
func (s *Store) MergeFreshProfile(ctx context.Context, p *models.Profile) error {
	s.mu.Lock()
	if s.cur == nil {
		s.mu.Unlock()
		return ErrNoSession
	}

	isAdmin := s.cur.IsAdmin
	if p.IsAdmin != nil {
		isAdmin = *p.IsAdmin
	}
	username := s.cur.Username
	if p.Username != "" {
		username = p.Username
	}

	s.cur = &Session{
		UserID:   s.cur.UserID,
		Username: username,
		IsAdmin:  isAdmin,
		Profile:  p,
	}
	snap := *s.cur
	s.mu.Unlock()

	return s.persist(ctx, snap)
}

// RestoreFromCache reads the persisted snapshot, if any, and installs it as
// a provisional session. The result is advisory: it lets the caller attempt
// an identity fetch, which either confirms the session or clears it.
func (s *Store) RestoreFromCache(ctx context.Context) (Session, error) {
	data, err := s.cache.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return Session{}, ErrCacheAbsent
		}
		return Session{}, fmt.Errorf("restore identity: %w", err)
	}

	var snap Session
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt snapshot is as good as no snapshot.
		_ = s.cache.Clear(ctx)
		return Session{}, ErrCacheAbsent
	}
	snap.Provisional = true

	s.mu.Lock()
	s.cur = &snap
	s.mu.Unlock()
	return snap, nil
}

// Clear destroys the session and erases the cached snapshot. Safe to call
// any number of times.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
	return s.cache.Clear(ctx)
}

func (s *Store) persist(ctx context.Context, snap Session) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal identity snapshot: %w", err)
	}
	return s.cache.Save(ctx, data)
}
