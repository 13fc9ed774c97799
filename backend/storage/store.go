// Package storage provides the durable key-value store backing the account,
// session and progress state. Values are JSON blobs addressed by a fixed set
// of logical keys, all scoped to a single local profile.
package storage

// Logical keys. Each holds a single JSON document.
const (
	KeyUsers       = "users"         // []models.User
	KeyCurrentUser = "current_user"  // models.Session; absent key = logged out
	KeyProgress    = "user_progress" // map[userID]models.ProgressRecord
)

// Store is a synchronous key-value store scoped to one client. All operations
// either complete or fail immediately; there is no cancellation concept.
type Store interface {
	// Get returns the value for key. The second result is false when the key
	// is absent, which is not an error.
	Get(key string) ([]byte, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}
