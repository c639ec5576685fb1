// Package storage is the durable local preference/session substrate. Its
// contract is deliberately small: key → JSON-serialized value, read at store
// construction, written on every relevant mutation.
package storage

// KV is a namespaced key/value store holding JSON-serialized values.
type KV interface {
	// Get decodes the value for key into out. The boolean reports whether
	// the key existed.
	Get(key string, out any) (bool, error)
	// Put stores the JSON serialization of v under key, replacing any
	// previous value.
	Put(key string, v any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
