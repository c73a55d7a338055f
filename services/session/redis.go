package session

import (
	"context"
	"encoding/json"
	"time"

	"medassist/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "sess:"

// RedisStore persists session state as JSON under a TTL, so dialog state survives
// process restarts and is shared across replicas.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore with the given idle TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return &models.SessionState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, state *models.SessionState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+id, b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}
