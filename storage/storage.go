package storage

// Record keys for the three persisted collections. Each value is a complete
// JSON-serialized collection, replaced wholesale on every mutation.
const (
	RecordAgents  = "marketplace_agents"
	RecordUser    = "current_user"
	RecordAPIKeys = "user_api_keys"
)

// Backend is the key-value persistence layer behind the stores. Implemented
// by SQLite for the application and Memory for tests.
type Backend interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores the value, replacing any previous one.
	Set(key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases any resources held by the backend.
	Close() error
}
