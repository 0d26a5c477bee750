package draftstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
)

const keyPrefix = "booking:draft:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, w *booking.Workflow) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal booking workflow: %w", err)
	}
	return s.client.Set(ctx, keyPrefix+w.ID, data, booking.DraftTTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*booking.Workflow, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return nil, booking.ErrWorkflowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load booking workflow: %w", err)
	}

	var w booking.Workflow
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, fmt.Errorf("parse booking workflow: %w", err)
	}
	return &w, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
