package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"memory": NewMemoryStore(),
	}
}

func TestStoreGetAbsent(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := store.Get("users")
			assert.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, value)
		})
	}
}

func TestStoreSetGet(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("users", []byte(`[{"id":"u1"}]`)))

			value, ok, err := store.Get("users")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"u1"}]`, string(value))
		})
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("current_user", []byte(`{"id":"a"}`)))
			require.NoError(t, store.Set("current_user", []byte(`{"id":"b"}`)))

			value, ok, err := store.Get("current_user")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"id":"b"}`, string(value))
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("current_user", []byte(`{}`)))
			require.NoError(t, store.Delete("current_user"))

			_, ok, err := store.Get("current_user")
			assert.NoError(t, err)
			assert.False(t, ok)

			// deleting again is not an error
			assert.NoError(t, store.Delete("current_user"))
		})
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("users", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("users")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}
