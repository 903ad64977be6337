package myredis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farism/mfe-host/service"

	"github.com/go-redis/redis/v8"
)

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
	zero      T
}

// NewCache creates redis implementation of generic cache interface.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	var zero T
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		zero:      zero,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

func (r *redisCache[T]) ReadValue(ctx context.Context, key string) (T, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return r.zero, service.NewEntityNotFoundError("Entity not found", nil)
	}
	if err != nil {
		return r.zero, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}

	item, err := r.unmarshal(bytes)
	if err != nil {
		return r.zero, service.NewEntityNotFoundError("Entity not found", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", r.zero, key, err))
	}

	return item, nil
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, time.Duration(ttlMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.generateKey(key)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
