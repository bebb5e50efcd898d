package storage

import (
	"fmt"
	"sync"

	"storefront.GO/core/cache"
)

const storageTag = "local-storage"

// MemoryStorage keeps items in a cache for the lifetime of the process.
type MemoryStorage struct {
	cache *cache.Cache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{cache: cache.NewCache()}
}

func (s *MemoryStorage) GetItem(key string) (string, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	str, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("storage: item %q is %T, not string", key, v)
	}
	return str, true, nil
}

func (s *MemoryStorage) SetItem(key, value string) error {
	s.cache.Set(key, value, 0, []string{storageTag})
	return nil
}

func (s *MemoryStorage) RemoveItem(key string) error {
	s.cache.Delete(key)
	return nil
}

// FileStorage is a MemoryStorage mirrored to a JSON file after every write.
type FileStorage struct {
	MemoryStorage
	path string
	mu   sync.Mutex
}

// NewFileStorage loads path (if it exists) and returns the storage.
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{MemoryStorage: *NewMemoryStorage(), path: path}
	if err := s.cache.RestoreFromFile(path); err != nil {
		return nil, fmt.Errorf("storage: restore %s: %w", path, err)
	}
	return s, nil
}

func (s *FileStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.MemoryStorage.SetItem(key, value)
	return s.cache.DumpToFile(s.path)
}

func (s *FileStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.MemoryStorage.RemoveItem(key)
	return s.cache.DumpToFile(s.path)
}
