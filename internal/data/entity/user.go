package entity

type UserRole string

const (
	RoleBuyer UserRole = "buyer"
	RoleAgent UserRole = "agent"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// User accounts are never hard-deleted.
type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	FullName     string     `db:"full_name"`
	Phone        *string    `db:"phone"`
	Role         UserRole   `db:"role"`
	Status       UserStatus `db:"status"`
}
