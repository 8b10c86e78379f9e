package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/bodycam_dashboard/internal/service"
)

const idempotencyPrefix = "complaint:idem:"

// IdempotencyStore хранит ключи отправленных жалоб в Redis
type IdempotencyStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewIdempotencyStore(redisClient *redis.Client, ttl time.Duration) service.IdempotencyStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &IdempotencyStore{redisClient: redisClient, ttl: ttl}
}

// Claim занимает ключ через SETNX. false - ключ уже занят другой отправкой.
func (s *IdempotencyStore) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := s.redisClient.SetNX(ctx, idempotencyPrefix+key, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	return ok, nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, idempotencyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
