package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds contact info for a requesting party. Identity management
// lives outside this service; the row is keyed by the external user ID.
type Profile struct {
	UserID    uuid.UUID `db:"user_id"`
	FullName  string    `db:"full_name"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
