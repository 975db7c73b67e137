package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// redisKeyPrefix namespaces session keys in a shared Redis instance.
const redisKeyPrefix = "labsite:session:"

// RedisStore persists session keys in Redis, for deployments where several
// frontends share one session state.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store against the given address. The connection
// is established lazily on first use.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func redisKey(key string) string {
	return fmt.Sprintf("%s%s", redisKeyPrefix, key)
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, redisKey(key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKey(key)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
