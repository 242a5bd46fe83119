package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-healthassist-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "chat:session:"

// SessionRepository keeps session transcripts in Redis so sessions survive
// process restarts and can be shared across replicas.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.UserID, b, r.ttl).Err()
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*store.Session, bool, error) {
	b, err := r.client.Get(ctx, sessionKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var s store.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, false, err
	}
	return &s, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+userID).Err()
}
