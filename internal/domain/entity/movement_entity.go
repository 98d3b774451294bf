package entity

import (
	"time"
)

// Movement is one ledger entry (income or expense) owned by exactly
// one user. The sign of Value encodes direction; Date is kept as the
// caller supplied it, Type is a free-form category.
type Movement struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}
