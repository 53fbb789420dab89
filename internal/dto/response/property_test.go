package response

import (
	"testing"
	"time"

	"real-estate-backend/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAgentToSummary_FallsBackToUser(t *testing.T) {
	phone := "8095551234"
	owner := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Email:    "luis@example.com",
		FullName: "Luis Peña",
		Phone:    &phone,
	}
	profile := &entity.AgentProfile{
		Base:   entity.Base{ID: uuid.New()},
		UserID: owner.ID,
	}

	summary := AgentToSummary(profile, owner)
	require.NotNil(t, summary)

	assert.Equal(t, "Luis Peña", summary.Name)
	assert.Equal(t, "luis@example.com", summary.Email)
	assert.Equal(t, "8095551234", summary.Phone)
	assert.Empty(t, summary.Avatar)
}

func TestAgentToSummary_ProfileWins(t *testing.T) {
	owner := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Email:    "luis@example.com",
		FullName: "Luis Peña",
	}
	profile := &entity.AgentProfile{
		Base:         entity.Base{ID: uuid.New()},
		UserID:       owner.ID,
		DisplayName:  "Peña Realty",
		ContactEmail: strPtr("office@example.com"),
		AvatarURL:    strPtr("https://cdn.example.com/a.png"),
	}

	summary := AgentToSummary(profile, owner)
	require.NotNil(t, summary)

	assert.Equal(t, "Peña Realty", summary.Name)
	assert.Equal(t, "office@example.com", summary.Email)
	assert.Equal(t, "https://cdn.example.com/a.png", summary.Avatar)
}

func TestAgentToSummary_NilProfile(t *testing.T) {
	assert.Nil(t, AgentToSummary(nil, &entity.User{}))
}

func TestPropertyToResponse_CoercesNilSlices(t *testing.T) {
	property := &entity.Property{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}

	resp := PropertyToResponse(property, nil, nil)

	assert.NotNil(t, resp.Images)
	assert.NotNil(t, resp.Amenities)
	assert.Nil(t, resp.Agent)
}

func TestNewPageResponse(t *testing.T) {
	page := NewPageResponse[int](nil, 1, 15, 0)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Zero(t, page.TotalPages)

	page = NewPageResponse([]int{1, 2, 3}, 2, 2, 5)
	assert.Equal(t, 3, page.TotalPages)
}
