package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTimeout = 5 * time.Second

// RedisKV is an alternative backing for deployments that want the state in a
// shared external store instead of a local file. The KV contract stays
// synchronous; each call blocks on one round trip.
type RedisKV struct {
	client *redis.Client
}

func OpenRedis(addr, password string, db int) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisKV{client: client}, nil
}

func (r *RedisKV) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisKV) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
