// Package session provides the Redis-backed conversation session store.
package session

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"
	"bistro/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 30 * time.Minute
)

// redisStore implements service.SessionStore. One key per user; the TTL is
// refreshed on every save so active flows never expire mid-step.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client, cfg *config.Config) service.SessionStore {
	ttl := defaultSessionTTL
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the user's active session.
func (s *redisStore) Get(ctx context.Context, userID int64) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to read session")
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

// Save stores the session and refreshes its TTL.
func (s *redisStore) Save(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := s.client.Set(ctx, sessionKey(session.UserID), raw, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Delete removes the user's session.
func (s *redisStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func sessionKey(userID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(userID, 10)
}
