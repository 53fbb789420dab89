package response

import (
	"real-estate-backend/internal/data/entity"
)

type AgentUser struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}

type AgentResponse struct {
	ID            string     `json:"id"`
	DisplayName   string     `json:"displayName"`
	AvatarURL     *string    `json:"avatarUrl,omitempty"`
	ContactEmail  *string    `json:"contactEmail,omitempty"`
	ContactPhone  *string    `json:"contactPhone,omitempty"`
	Verified      bool       `json:"verified"`
	User          *AgentUser `json:"user,omitempty"`
	PropertyCount int64      `json:"propertyCount"`
}

type AgentDetailResponse struct {
	AgentResponse
	Properties []PropertyResponse `json:"properties"`
}

func AgentToResponse(profile *entity.AgentProfile, user *entity.User, propertyCount int64) AgentResponse {
	resp := AgentResponse{
		ID:            profile.ID.String(),
		DisplayName:   profile.DisplayName,
		AvatarURL:     profile.AvatarURL,
		ContactEmail:  profile.ContactEmail,
		ContactPhone:  profile.ContactPhone,
		Verified:      profile.Verified,
		PropertyCount: propertyCount,
	}

	if user != nil {
		resp.User = &AgentUser{
			FullName: user.FullName,
			Email:    user.Email,
			Phone:    user.Phone,
		}
	}

	return resp
}
