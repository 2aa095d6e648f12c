package mykv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cakeshop:"

type redisStore struct {
	client *redis.Client
}

func newRedisStore(c context.Context, addr string) (*redisStore, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	err := client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("error connecting to redis at %s: %w", addr, err)
	}

	return NewRedisStore(client), func() {
		client.Close()
	}, nil
}

func NewRedisStore(client *redis.Client) *redisStore {
	return &redisStore{
		client: client,
	}
}

func (s *redisStore) Get(c context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(c, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s failed: %w", key, err)
	}

	return value, true, nil
}

func (s *redisStore) Set(c context.Context, key string, value string) error {
	err := s.client.Set(c, keyPrefix+key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("redis set %s failed: %w", key, err)
	}

	return nil
}

func (s *redisStore) Remove(c context.Context, key string) error {
	err := s.client.Del(c, keyPrefix+key).Err()
	if err != nil {
		return fmt.Errorf("redis delete %s failed: %w", key, err)
	}

	return nil
}
