package request

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"fullName" validate:"required,min=2"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=buyer agent admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=8"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required,min=10"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
