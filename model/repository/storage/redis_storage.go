package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps items as plain redis strings under a key prefix. Items never expire.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (s *RedisStorage) GetItem(key string) (string, bool, error) {
	v, err := s.client.Get(context.Background(), s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStorage) SetItem(key, value string) error {
	return s.client.Set(context.Background(), s.prefix+key, value, 0).Err()
}

func (s *RedisStorage) RemoveItem(key string) error {
	return s.client.Del(context.Background(), s.prefix+key).Err()
}
