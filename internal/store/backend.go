package store

// Backend is a minimal key-value store over raw JSON bytes. Both
// physical stores implement it, so the facade and tests can treat
// them interchangeably.
type Backend interface {
	// Get returns the stored bytes for key, and whether the key exists.
	Get(key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
