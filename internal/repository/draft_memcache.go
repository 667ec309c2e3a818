package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"board-web/internal/models"

	"github.com/bradfitz/gomemcache/memcache"
)

// MemcacheDraftStore keeps drafts as JSON items. Memcached has no context
// support, so ctx is unused.
type MemcacheDraftStore struct {
	mc  *memcache.Client
	ttl time.Duration
}

func NewMemcacheDraftStore(mc *memcache.Client, ttl time.Duration) *MemcacheDraftStore {
	return &MemcacheDraftStore{mc: mc, ttl: ttl}
}

func (s *MemcacheDraftStore) Get(_ context.Context, key string) (*models.Draft, error) {
	it, err := s.mc.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	var d models.Draft
	if err := json.Unmarshal(it.Value, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MemcacheDraftStore) Save(_ context.Context, d models.Draft) error {
	now := time.Now()
	d.UpdatedAt = now
	d.ExpiresAt = now.Add(s.ttl)

	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.mc.Set(&memcache.Item{
		Key:        d.Key,
		Value:      b,
		Expiration: memcacheExpiration(s.ttl, now),
	})
}

// maxRelativeExpiration is the longest TTL memcached reads as seconds from
// now; larger values are taken as a unix timestamp.
const maxRelativeExpiration = 30 * 24 * time.Hour

func memcacheExpiration(ttl time.Duration, now time.Time) int32 {
	if ttl <= 0 {
		return 0
	}
	if ttl > maxRelativeExpiration {
		return int32(now.Add(ttl).Unix())
	}
	secs := int32(ttl / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (s *MemcacheDraftStore) Delete(_ context.Context, key string) error {
	if err := s.mc.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
