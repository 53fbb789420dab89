package response

import (
	"real-estate-backend/internal/data/entity"
)

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	Status   string  `json:"status"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ForgotPasswordResponse has the same shape whether or not the account
// exists; Token is only populated outside production.
type ForgotPasswordResponse struct {
	Message string  `json:"message"`
	Token   *string `json:"token,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		Role:     string(user.Role),
		Status:   string(user.Status),
	}
}

func AuthToResponse(user *entity.User, token string) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User:  UserToResponse(user),
	}
}
