// Package storage persists the visitor's selection ledgers as string values under string
// keys, the way a browser's localStorage does. Writes are last-writer-wins.
package storage

// Storage is a durable key -> string store.
type Storage interface {
	// GetItem returns the value for key; ok is false when the key was never set or was removed.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
