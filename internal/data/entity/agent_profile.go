package entity

import (
	"github.com/google/uuid"
)

// AgentProfile is the public-facing identity of an agent. One per user,
// created at registration for agents or lazily on first property
// submission.
type AgentProfile struct {
	Base
	UserID       uuid.UUID `db:"user_id"`
	DisplayName  string    `db:"display_name"`
	AvatarURL    *string   `db:"avatar_url"`
	ContactEmail *string   `db:"contact_email"`
	ContactPhone *string   `db:"contact_phone"`
	Verified     bool      `db:"verified"`
}
