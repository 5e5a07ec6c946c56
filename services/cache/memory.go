package cache

import (
	"errors"
	"sync"
	"time"
)

// ErrCacheMiss is returned by MemoryService on a missing or expired key
var ErrCacheMiss = errors.New("cache: miss")

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryService is an in-process CacheService used when no memcache server is
// configured. Cooldowns and URL memoization then only hold for the lifetime
// of the process, which is acceptable for single-instance deployments.
type MemoryService struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryService creates an empty in-memory cache
func NewMemoryService() *MemoryService {
	return &MemoryService{entries: make(map[string]memoryEntry)}
}

// Get retrieves a value, honoring expiration
func (m *MemoryService) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

// Set stores a value; zero expiration means no expiry
func (m *MemoryService) Set(key string, value []byte, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	m.entries[key] = entry
	return nil
}

// Delete removes a value
func (m *MemoryService) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
