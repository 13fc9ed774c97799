package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/backend/models"
	"learnhub/backend/storage"
)

func newService() *Service {
	return NewService(storage.NewMemoryStore())
}

func TestRegister(t *testing.T) {
	svc := newService()

	user, err := svc.Register("Alice", "  Alice@Example.COM ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@b.com", "secret1"},
		{"empty email", "Alice", "", "secret1"},
		{"empty password", "Alice", "a@b.com", ""},
		{"short password", "Alice", "a@b.com", "12345"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService()
			_, err := svc.Register(tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService()

	_, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// any case variant of the email is a duplicate, every time
	for _, email := range []string{"alice@example.com", "ALICE@EXAMPLE.COM", "Alice@Example.com"} {
		_, err := svc.Register("Mallory", email, "secret2")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	}

	users, err := svc.allUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterGeneratesDistinctIDs(t *testing.T) {
	svc := newService()

	seen := map[string]bool{}
	emails := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"}
	for _, email := range emails {
		user, err := svc.Register("User", email, "secret1")
		require.NoError(t, err)
		assert.False(t, seen[user.ID], "id %q reused", user.ID)
		seen[user.ID] = true
	}
}

func TestRegisterNeverReturnsPassword(t *testing.T) {
	svc := newService()

	user, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret1")
	assert.NotContains(t, string(raw), "password")
}

func TestRegisterInitializesProgress(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store)

	user, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	raw, ok, err := store.Get(storage.KeyProgress)
	require.NoError(t, err)
	require.True(t, ok)

	var all map[string]models.ProgressRecord
	require.NoError(t, json.Unmarshal(raw, &all))
	record, exists := all[user.ID]
	assert.True(t, exists)
	assert.Empty(t, record.Courses)
	assert.False(t, record.LastUpdated.IsZero())
}

func TestLogin(t *testing.T) {
	svc := newService()
	_, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	session, err := svc.Login(" ALICE@example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", session.Name)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.False(t, session.LoginTime.IsZero())

	current, ok, err := svc.CurrentUser()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, session.UserID, current.UserID)
	assert.True(t, svc.IsLoggedIn())
}

func TestLoginFailures(t *testing.T) {
	svc := newService()
	_, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	t.Run("empty fields", func(t *testing.T) {
		_, err := svc.Login("", "secret1")
		assert.ErrorIs(t, err, ErrValidation)
		_, err = svc.Login("alice@example.com", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("bob@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("password is case sensitive", func(t *testing.T) {
		_, err := svc.Login("alice@example.com", "SECRET1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	assert.False(t, svc.IsLoggedIn())
}

func TestLoginReplacesSession(t *testing.T) {
	svc := newService()
	_, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Register("Bob", "bob@example.com", "secret2")
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Login("bob@example.com", "secret2")
	require.NoError(t, err)

	current, ok, err := svc.CurrentUser()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", current.Email)
}

func TestLogout(t *testing.T) {
	svc := newService()
	_, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Login("alice@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	_, ok, err := svc.CurrentUser()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, svc.IsLoggedIn())

	// idempotent
	assert.NoError(t, svc.Logout())
	assert.False(t, svc.IsLoggedIn())
}

func TestSeedDemoUser(t *testing.T) {
	svc := newService()
	require.NoError(t, svc.SeedDemoUser())

	session, err := svc.Login("DEMO@LEARNHUB.COM", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", session.Name)

	// seeding again does not add a second account
	require.NoError(t, svc.SeedDemoUser())
	users, err := svc.allUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSeedDemoUserSkipsNonEmptyStore(t *testing.T) {
	svc := newService()
	_, err := svc.Register("Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.SeedDemoUser())
	_, err = svc.Login("demo@learnhub.com", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
