package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ArcadeFlow/internal/model"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "arcadeflow:session:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore url 形如 redis://:password@host:6379/0
func NewRedisStore(url string) (Store, *redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("解析 redis 地址失败: %w", err)
	}
	client := redis.NewClient(opt)
	return &redisStore{client: client}, client, nil
}

func (r *redisStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, keyPrefix+s.UserID, b, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInternal, err)
	}
	return nil
}

func (r *redisStore) Load(ctx context.Context, userID string) (*Session, error) {
	b, err := r.client.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInternal, err)
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: decode session: %w", model.ErrInternal, err)
	}
	return &s, nil
}
