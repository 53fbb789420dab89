package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is single-use and time-bounded. Only the SHA-256
// hash of the raw token is ever stored.
type PasswordResetToken struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	UsedAt    *time.Time `db:"used_at"`
}
