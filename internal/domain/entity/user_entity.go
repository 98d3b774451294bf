package entity

import (
	"time"
)

// User is the aggregate root for the credential domain.
// Password holds a bcrypt hash and must never reach a client.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}
