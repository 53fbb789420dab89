package response

import (
	"time"

	"real-estate-backend/internal/data/entity"
)

// AgentSummary is the flattened agent contact block embedded in
// property responses, with user-record fallbacks for missing profile
// fields.
type AgentSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type PropertyResponse struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Price            float64       `json:"price"`
	Currency         string        `json:"currency"`
	Location         string        `json:"location"`
	Bedrooms         int           `json:"bedrooms"`
	Bathrooms        float64       `json:"bathrooms"`
	Area             float64       `json:"area"`
	Type             string        `json:"type"`
	ListingType      string        `json:"listingType"`
	ModerationStatus string        `json:"moderationStatus"`
	Description      string        `json:"description"`
	Images           []string      `json:"images"`
	Amenities        []string      `json:"amenities"`
	Agent            *AgentSummary `json:"agent"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func AgentToSummary(profile *entity.AgentProfile, owner *entity.User) *AgentSummary {
	if profile == nil {
		return nil
	}

	summary := &AgentSummary{
		ID:   profile.ID.String(),
		Name: profile.DisplayName,
	}
	if profile.ContactPhone != nil {
		summary.Phone = *profile.ContactPhone
	}
	if profile.ContactEmail != nil {
		summary.Email = *profile.ContactEmail
	}
	if profile.AvatarURL != nil {
		summary.Avatar = *profile.AvatarURL
	}

	if owner != nil {
		if summary.Name == "" {
			summary.Name = owner.FullName
		}
		if summary.Email == "" {
			summary.Email = owner.Email
		}
		if summary.Phone == "" && owner.Phone != nil {
			summary.Phone = *owner.Phone
		}
	}

	return summary
}

func PropertyToResponse(property *entity.Property, profile *entity.AgentProfile, owner *entity.User) PropertyResponse {
	images := property.Images
	if images == nil {
		images = []string{}
	}
	amenities := property.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return PropertyResponse{
		ID:               property.ID.String(),
		Title:            property.Title,
		Price:            property.Price,
		Currency:         string(property.Currency),
		Location:         property.Location,
		Bedrooms:         property.Bedrooms,
		Bathrooms:        property.Bathrooms,
		Area:             property.Area,
		Type:             property.Type,
		ListingType:      string(property.ListingType),
		ModerationStatus: string(property.ModerationStatus),
		Description:      property.Description,
		Images:           images,
		Amenities:        amenities,
		Agent:            AgentToSummary(profile, owner),
		CreatedAt:        property.CreatedAt,
		UpdatedAt:        property.UpdatedAt,
	}
}
