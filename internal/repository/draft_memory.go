package repository

import (
	"context"
	"sync"
	"time"

	"board-web/internal/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type MemoryDraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[string]models.Draft
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[string]models.Draft),
	}
}

func (s *MemoryDraftStore) Get(_ context.Context, key string) (*models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[key]
	if !ok || !d.ExpiresAt.After(s.now()) {
		return nil, ErrDraftNotFound
	}
	return &d, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	d.UpdatedAt = now
	d.ExpiresAt = now.Add(s.ttl)
	s.drafts[d.Key] = d
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}

// PurgeExpired drops expired drafts and returns how many were removed.
func (s *MemoryDraftStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, d := range s.drafts {
		if !d.ExpiresAt.After(now) {
			delete(s.drafts, k)
			n++
		}
	}
	return n
}

// StartPurger schedules PurgeExpired. Stop the returned cron on shutdown.
func (s *MemoryDraftStore) StartPurger(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if n := s.PurgeExpired(); n > 0 {
			log.Debug().Int("count", n).Msg("purged expired drafts")
		}
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
