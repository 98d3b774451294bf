package repository

import (
	"context"

	"github.com/oksasatya/mywallet-api/internal/domain/entity"
)

// SessionRepository stores opaque-token to user-id bindings.
// Delete must succeed for tokens that no longer exist (idempotent logout).
type SessionRepository interface {
	Create(ctx context.Context, s entity.Session) error
	GetUserID(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
