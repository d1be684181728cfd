package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/internal/flow"
	"github.com/redis/go-redis/v9"
)

const resumeKey = "interview:resume"

// ResumeStore persists the single resume-snapshot slot in Redis so an
// interrupted interview survives a client process restart. Snapshots expire
// after the configured TTL; an expired one just means a fresh interview.
type ResumeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResumeStore(rdb *redis.Client, ttl time.Duration) *ResumeStore {
	return &ResumeStore{rdb: rdb, ttl: ttl}
}

func (s *ResumeStore) SaveSnapshot(ctx context.Context, snap *flow.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, resumeKey, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *ResumeStore) LoadSnapshot(ctx context.Context) (*flow.Snapshot, error) {
	b, err := s.rdb.Get(ctx, resumeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap flow.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

func (s *ResumeStore) ClearSnapshot(ctx context.Context) error {
	if err := s.rdb.Del(ctx, resumeKey).Err(); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
