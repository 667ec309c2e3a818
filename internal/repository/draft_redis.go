package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"board-web/internal/models"

	"github.com/go-redis/redis/v8"
)

type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, key string) (*models.Draft, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	var d models.Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, d models.Draft) error {
	now := time.Now()
	d.UpdatedAt = now
	d.ExpiresAt = now.Add(s.ttl)

	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, d.Key, b, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
