// Package auth manages the account list and the single active session on top
// of the key-value store.
package auth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"learnhub/backend/models"
	"learnhub/backend/storage"
)

const minPasswordLen = 6

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Register creates a new account. The email is trimmed and lowercased before
// the case-insensitive duplicate check. On success the new user gets an empty
// progress record and only public fields are returned.
func (s *Service) Register(name, email, password string) (models.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return models.PublicUser{}, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return models.PublicUser{}, fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLen)
	}

	users, err := s.allUsers()
	if err != nil {
		return models.PublicUser{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return models.PublicUser{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:        newUserID(),
		Name:      name,
		Email:     email,
		Password:  password, // plaintext by design of the demo
		CreatedAt: time.Now().UTC(),
	}

	if err := s.saveUsers(append(users, user)); err != nil {
		return models.PublicUser{}, err
	}
	if err := s.initProgress(user.ID); err != nil {
		return models.PublicUser{}, err
	}

	return user.Public(), nil
}

// Login matches email case-insensitively (trimmed) and the password exactly.
// A successful login replaces any existing session.
func (s *Service) Login(email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return models.Session{}, fmt.Errorf("%w: please enter both email and password", ErrValidation)
	}

	users, err := s.allUsers()
	if err != nil {
		return models.Session{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			session := models.Session{
				UserID:    u.ID,
				Name:      u.Name,
				Email:     u.Email,
				LoginTime: time.Now().UTC(),
			}
			if err := s.setSession(session); err != nil {
				return models.Session{}, err
			}
			return session, nil
		}
	}

	return models.Session{}, ErrInvalidCredentials
}

// Logout clears the session unconditionally; logging out while logged out is
// not an error.
func (s *Service) Logout() error {
	if err := s.store.Delete(storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the active session. The second result is false when
// nobody is logged in.
func (s *Service) CurrentUser() (models.Session, bool, error) {
	raw, ok, err := s.store.Get(storage.KeyCurrentUser)
	if err != nil || !ok {
		return models.Session{}, false, err
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, false, fmt.Errorf("failed to decode session: %w", err)
	}
	return session, true, nil
}

func (s *Service) IsLoggedIn() bool {
	_, ok, err := s.CurrentUser()
	return err == nil && ok
}

// SeedDemoUser creates the demo account when no users exist yet, so a fresh
// profile can be exercised without registering.
func (s *Service) SeedDemoUser() error {
	users, err := s.allUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	demo := models.User{
		ID:        newUserID(),
		Name:      "Demo User",
		Email:     "demo@learnhub.com",
		Password:  "demo123",
		CreatedAt: time.Now().UTC(),
	}
	return s.saveUsers([]models.User{demo})
}

func (s *Service) allUsers() ([]models.User, error) {
	raw, ok, err := s.store.Get(storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *Service) saveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.store.Set(storage.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (s *Service) setSession(session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(storage.KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// initProgress creates an empty progress record for a fresh user id if one
// does not exist yet.
func (s *Service) initProgress(userID string) error {
	all := map[string]models.ProgressRecord{}
	raw, ok, err := s.store.Get(storage.KeyProgress)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &all); err != nil {
			return fmt.Errorf("failed to decode progress: %w", err)
		}
	}
	if _, exists := all[userID]; exists {
		return nil
	}
	all[userID] = models.NewProgressRecord(time.Now().UTC())

	out, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := s.store.Set(storage.KeyProgress, out); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// newUserID builds a time-based id with a random suffix. Collisions are
// possible in theory only.
func newUserID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), suffix)
}
