package marketplace

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"agent-marketplace/storage"
)

// Session owns the current demo user. The state machine has two states,
// logged out and logged in; login with an unknown id leaves the state
// unchanged and is surfaced as ErrNotFound.
type Session struct {
	backend storage.Backend
	log     zerolog.Logger
	current *User
}

// NewSession creates a session store over the given backend.
func NewSession(backend storage.Backend, log zerolog.Logger) *Session {
	return &Session{
		backend: backend,
		log:     log.With().Str("store", "session").Logger(),
	}
}

// Restore loads a persisted user, if any. A missing or malformed record
// leaves the session logged out rather than failing.
func (s *Session) Restore() {
	raw, ok, err := s.backend.Get(storage.RecordUser)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read persisted session")
		return
	}
	if !ok {
		return
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Msg("persisted session is malformed, staying logged out")
		return
	}
	s.current = &user
}

// Login selects a demo roster identity as the current user and persists it.
// Ids outside the roster change nothing and return ErrNotFound.
func (s *Session) Login(userID int) error {
	for _, user := range demoRoster() {
		if user.ID == userID {
			u := user
			s.current = &u
			if err := s.save(u); err != nil {
				return err
			}
			s.log.Info().Str("user", u.Name).Msg("logged in")
			return nil
		}
	}
	return ErrNotFound
}

// Logout clears the current user and removes the persisted session record.
func (s *Session) Logout() error {
	s.current = nil
	if err := s.backend.Delete(storage.RecordUser); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

// Current returns the logged-in user, if any.
func (s *Session) Current() (User, bool) {
	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

// Roster returns the fixed demo identities offered at login.
func (s *Session) Roster() []User {
	return demoRoster()
}

func (s *Session) save(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.backend.Set(storage.RecordUser, string(data))
}
