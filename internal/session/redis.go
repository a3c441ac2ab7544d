package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customers-console/internal/ui"
	"github.com/vmihailenco/msgpack/v5"
	"time"
)

type redisFormStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFormStore(client *redis.Client, ttl time.Duration) FormStore {
	return &redisFormStore{client: client, ttl: ttl}
}

func (r *redisFormStore) FindByID(ctx context.Context, id string) (*ui.Snapshot, error) {
	res, err := r.client.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap ui.Snapshot
	if err := msgpack.Unmarshal([]byte(res), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode form state of session %s - %w", id, err)
	}

	return &snap, nil
}

func (r *redisFormStore) Save(ctx context.Context, id string, snap ui.Snapshot) error {
	encoded, err := msgpack.Marshal(&snap)
	if err != nil {
		return err
	}

	if _, err := r.client.Set(ctx, key(id), encoded, r.ttl).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisFormStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, key(id)).Result(); err != nil {
		return err
	}
	return nil
}
