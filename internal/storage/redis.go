package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"kfc-ordering/internal/domain"
)

// RedisStore keeps the snapshot as a single Redis string value under AppKey.
type RedisStore struct {
	Client *redis.Client
	ctx    context.Context
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client: client,
		ctx:    context.Background(),
	}
}

func (s *RedisStore) Load() (domain.Snapshot, bool, error) {
	blob, err := s.Client.Get(s.ctx, AppKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("redis get %s: %w", AppKey, err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	return snap, true, nil
}

func (s *RedisStore) Save(snap domain.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.Client.Set(s.ctx, AppKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", AppKey, err)
	}
	return nil
}
