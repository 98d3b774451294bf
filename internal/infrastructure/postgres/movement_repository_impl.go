package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/mywallet-api/internal/domain/entity"
	"github.com/oksasatya/mywallet-api/internal/domain/repository"
)

type MovementRepository struct {
	pool *pgxpool.Pool
}

func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

func (r *MovementRepository) Create(ctx context.Context, m *entity.Movement) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO movements (user_id, date, description, value, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, m.UserID, m.Date, m.Description, m.Value, m.Type)

	return row.Scan(&m.ID, &m.CreatedAt)
}

// ListByUser returns the user's movements in insertion order.
func (r *MovementRepository) ListByUser(ctx context.Context, userID string) ([]entity.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, date, description, value, type, created_at
		FROM movements
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Movement, 0)
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.Description, &m.Value, &m.Type, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var _ repository.MovementRepository = (*MovementRepository)(nil)
