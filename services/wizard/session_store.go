// File: services/wizard/session_store.go
package wizard

import (
	"context"
	"encoding/json"
	"time"

	"hometeam/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "wizard:sess:"

// SessionStore persists wizard sessions. Get returns nil without error when
// the session does not exist (closed or expired).
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Save(ctx context.Context, sess *models.WizardSession) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore stores sessions in Redis with a TTL, refreshed on every
// save so an active wizard never expires mid-flow.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.WizardSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.WizardSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+sess.ID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionPrefix+id).Err()
}
