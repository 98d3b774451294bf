package repository

import (
	"context"

	"github.com/oksasatya/mywallet-api/internal/domain/entity"
)

// MovementRepository defines the interface for ledger entry persistence.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	ListByUser(ctx context.Context, userID string) ([]entity.Movement, error)
}
