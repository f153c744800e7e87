package state

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CacheStorage keeps chat state in memory with idle eviction. Losing a
// mapping only costs the user a /start; the assessment history itself
// lives in the repository.
type CacheStorage struct {
	cache *gocache.Cache
}

// NewCacheStorage creates an in-memory chat state storage.
func NewCacheStorage(ttl, cleanupInterval time.Duration) *CacheStorage {
	return &CacheStorage{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

var _ Storage = &CacheStorage{}

func (s *CacheStorage) Get(ctx context.Context, userID int64) (*ChatState, error) {
	v, ok := s.cache.Get(key(userID))
	if !ok {
		return nil, nil
	}
	return v.(*ChatState), nil
}

func (s *CacheStorage) Set(ctx context.Context, st *ChatState) error {
	s.cache.Set(key(st.UserID), st, gocache.DefaultExpiration)
	return nil
}

func (s *CacheStorage) Delete(ctx context.Context, userID int64) error {
	s.cache.Delete(key(userID))
	return nil
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
