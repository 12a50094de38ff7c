package store

// Store defines the interface for key-value blob persistence. Values are
// opaque byte slices; callers own the encoding (JSON throughout this
// application). Operations are synchronous from the caller's perspective.
type Store interface {
	// Get returns the value stored under key. The boolean reports
	// whether the key was present; a missing key is not an error.
	Get(key string) ([]byte, bool, error)

	// Put stores the value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes the key if present. Deleting a missing key is a
	// no-op, not an error.
	Delete(key string) error

	// Close releases any underlying resources.
	Close() error
}
