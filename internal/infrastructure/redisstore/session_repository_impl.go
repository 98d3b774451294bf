package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/mywallet-api/internal/domain/entity"
	"github.com/oksasatya/mywallet-api/internal/domain/repository"
)

func sessionKey(token string) string { return "session:token:" + token }

// SessionRepository keeps token -> user-id bindings in Redis.
// Keys carry no TTL: a session lives until an explicit logout.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Create(ctx context.Context, s entity.Session) error {
	return r.rdb.Set(ctx, sessionKey(s.Token), s.UserID, 0).Err()
}

func (r *SessionRepository) GetUserID(ctx context.Context, token string) (string, error) {
	uid, err := r.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

// Delete removes the session if present. Deleting an absent token is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, sessionKey(token)).Err()
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
