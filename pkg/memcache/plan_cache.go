// pkg/memcache/plan_cache.go
package mem

import (
	"sync"
	"time"
)

// ResponseCache memoizes raw AI responses keyed by a request digest, so
// identical generation requests within the TTL don't burn free-tier quota.
type ResponseCache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
}

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

type ResponseStore struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{
		data: make(map[string]cacheEntry),
	}
}

func (s *ResponseStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (s *ResponseStore) Set(key string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}

	// Opportunistic cleanup once the map grows past a sane bound.
	if len(s.data) > 1000 {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}
