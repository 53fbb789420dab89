package usecase

import (
	"context"
	"testing"
	"time"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/dto/request"
	"real-estate-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type propertyFixture struct {
	srv        *propertyService
	users      *fakeUserRepo
	profiles   *fakeAgentProfileRepo
	properties *fakePropertyRepo

	agent        *entity.User
	agentProfile *entity.AgentProfile
}

func newPropertyFixture(t *testing.T) *propertyFixture {
	t.Helper()
	repo := newTestRepository()
	f := &propertyFixture{
		srv:        NewPropertyService(repo, zap.NewNop()).(*propertyService),
		users:      repo.User.(*fakeUserRepo),
		profiles:   repo.AgentProfile.(*fakeAgentProfileRepo),
		properties: repo.Property.(*fakePropertyRepo),
	}

	now := time.Now()
	f.agent = &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:    "agent@example.com",
		FullName: "Luis Peña",
		Role:     entity.RoleAgent,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, f.users.Create(context.Background(), f.agent))

	f.agentProfile = &entity.AgentProfile{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      f.agent.ID,
		DisplayName: f.agent.FullName,
	}
	require.NoError(t, f.profiles.Create(context.Background(), f.agentProfile))

	return f
}

func (f *propertyFixture) seedProperty(t *testing.T, status entity.ModerationStatus) *entity.Property {
	t.Helper()
	now := time.Now()
	property := &entity.Property{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:            "Villa in Punta Cana",
		Price:            250000,
		Currency:         entity.CurrencyUSD,
		Location:         "Punta Cana",
		Bedrooms:         3,
		Bathrooms:        2.5,
		Area:             180,
		Type:             "villa",
		ListingType:      entity.ListingSale,
		ModerationStatus: status,
		Description:      "Beachfront villa with a private pool.",
		AgentProfileID:   f.agentProfile.ID,
	}
	require.NoError(t, f.properties.Create(context.Background(), property))
	return property
}

func propertyReq() *request.PropertyRequest {
	return &request.PropertyRequest{
		Title:       "Apartment in Santiago",
		Price:       95000,
		Currency:    "USD",
		Location:    "Santiago",
		Bedrooms:    2,
		Bathrooms:   1,
		Area:        85,
		Type:        "apartment",
		ListingType: "SALE",
		Description: "Bright apartment close to downtown.",
	}
}

func TestCreate_NewListingIsPending(t *testing.T) {
	f := newPropertyFixture(t)

	resp, err := f.srv.Create(context.Background(), f.agent.ID, propertyReq())
	require.NoError(t, err)

	assert.Equal(t, "PENDING", resp.ModerationStatus)
	require.NotNil(t, resp.Agent)
	assert.Equal(t, f.agentProfile.ID.String(), resp.Agent.ID)
}

func TestCreate_SuspendedAccountForbidden(t *testing.T) {
	f := newPropertyFixture(t)
	f.agent.Status = entity.UserStatusSuspended

	_, err := f.srv.Create(context.Background(), f.agent.ID, propertyReq())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreate_LazilyCreatesProfile(t *testing.T) {
	f := newPropertyFixture(t)

	now := time.Now()
	newcomer := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:    "new-agent@example.com",
		FullName: "Maria Gomez",
		Role:     entity.RoleAgent,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, f.users.Create(context.Background(), newcomer))

	resp, err := f.srv.Create(context.Background(), newcomer.ID, propertyReq())
	require.NoError(t, err)

	profile, err := f.profiles.FindByUserID(context.Background(), newcomer.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Maria Gomez", profile.DisplayName)
	require.NotNil(t, profile.ContactEmail)
	assert.Equal(t, "new-agent@example.com", *profile.ContactEmail)
	assert.Equal(t, profile.ID.String(), resp.Agent.ID)
}

func TestGetByID_Visibility(t *testing.T) {
	f := newPropertyFixture(t)
	pending := f.seedProperty(t, entity.ModerationPending)

	owner := &Identity{UserID: f.agent.ID, Role: entity.RoleAgent}
	admin := &Identity{UserID: uuid.New(), Role: entity.RoleAdmin}
	stranger := &Identity{UserID: uuid.New(), Role: entity.RoleBuyer}

	tests := []struct {
		name    string
		viewer  *Identity
		wantErr error
	}{
		{"anonymous", nil, apperrors.ErrNotFound},
		{"owner", owner, nil},
		{"admin", admin, nil},
		{"stranger", stranger, apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.srv.GetByID(context.Background(), pending.ID.String(), tt.viewer)
			if tt.wantErr != nil {
				// Hidden rows look identical to missing rows
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pending.ID.String(), resp.ID)
		})
	}
}

func TestGetByID_ApprovedVisibleToAll(t *testing.T) {
	f := newPropertyFixture(t)
	approved := f.seedProperty(t, entity.ModerationApproved)

	resp, err := f.srv.GetByID(context.Background(), approved.ID.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, approved.ID.String(), resp.ID)
}

func TestUpdateMine_ForcesPending(t *testing.T) {
	f := newPropertyFixture(t)
	approved := f.seedProperty(t, entity.ModerationApproved)

	title := "Updated villa"
	resp, err := f.srv.UpdateMine(context.Background(), f.agent.ID, approved.ID.String(),
		&request.PropertyUpdateRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Updated villa", resp.Title)
	assert.Equal(t, "PENDING", resp.ModerationStatus)
}

func TestUpdateMine_NotOwnerForbidden(t *testing.T) {
	f := newPropertyFixture(t)
	property := f.seedProperty(t, entity.ModerationApproved)

	now := time.Now()
	other := &entity.User{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:  "other@example.com",
		Role:   entity.RoleAgent,
		Status: entity.UserStatusActive,
	}
	require.NoError(t, f.users.Create(context.Background(), other))
	require.NoError(t, f.profiles.Create(context.Background(), &entity.AgentProfile{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: other.ID,
	}))

	title := "Hijacked"
	_, err := f.srv.UpdateMine(context.Background(), other.ID, property.ID.String(),
		&request.PropertyUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAdminUpdate_PreservesStatus(t *testing.T) {
	f := newPropertyFixture(t)
	approved := f.seedProperty(t, entity.ModerationApproved)

	title := "Admin touch-up"
	resp, err := f.srv.AdminUpdate(context.Background(), approved.ID.String(),
		&request.PropertyUpdateRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Admin touch-up", resp.Title)
	assert.Equal(t, "APPROVED", resp.ModerationStatus)
}

func TestAdminUpdate_SetsStatusWhenSupplied(t *testing.T) {
	f := newPropertyFixture(t)
	approved := f.seedProperty(t, entity.ModerationApproved)

	status := "REJECTED"
	resp, err := f.srv.AdminUpdate(context.Background(), approved.ID.String(),
		&request.PropertyUpdateRequest{ModerationStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.ModerationStatus)
}

func TestModeration_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.ModerationStatus
		approve bool
		wantErr error
	}{
		{"approve pending", entity.ModerationPending, true, nil},
		{"reject pending", entity.ModerationPending, false, nil},
		{"reject approved", entity.ModerationApproved, false, nil},
		{"approve rejected", entity.ModerationRejected, true, nil},
		{"approve approved", entity.ModerationApproved, true, apperrors.ErrConflict},
		{"reject rejected", entity.ModerationRejected, false, apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPropertyFixture(t)
			property := f.seedProperty(t, tt.from)

			var err error
			if tt.approve {
				_, err = f.srv.Approve(context.Background(), property.ID.String())
			} else {
				_, err = f.srv.Reject(context.Background(), property.ID.String())
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, f.properties.properties[property.ID].ModerationStatus)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestList_PublicPinnedToApproved(t *testing.T) {
	f := newPropertyFixture(t)
	f.seedProperty(t, entity.ModerationApproved)
	f.seedProperty(t, entity.ModerationPending)
	f.seedProperty(t, entity.ModerationRejected)

	page, err := f.srv.List(context.Background(), request.PropertyListQuery{
		Statuses: []string{"PENDING"}, // ignored for public callers
	}, false)
	require.NoError(t, err)

	assert.Empty(t, f.properties.lastFilter.Statuses)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "APPROVED", page.Data[0].ModerationStatus)
	assert.Equal(t, int64(1), page.Total)
}

func TestList_AdminDefaultsToAllStatuses(t *testing.T) {
	f := newPropertyFixture(t)
	f.seedProperty(t, entity.ModerationApproved)
	f.seedProperty(t, entity.ModerationPending)
	f.seedProperty(t, entity.ModerationRejected)

	page, err := f.srv.List(context.Background(), request.PropertyListQuery{}, true)
	require.NoError(t, err)

	assert.ElementsMatch(t, []entity.ModerationStatus{
		entity.ModerationPending,
		entity.ModerationApproved,
		entity.ModerationRejected,
	}, f.properties.lastFilter.Statuses)
	assert.Equal(t, int64(3), page.Total)
}

func TestList_AdminStatusFilterHonored(t *testing.T) {
	f := newPropertyFixture(t)
	f.seedProperty(t, entity.ModerationApproved)
	f.seedProperty(t, entity.ModerationPending)

	page, err := f.srv.List(context.Background(), request.PropertyListQuery{
		Statuses: []string{"PENDING"},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, []entity.ModerationStatus{entity.ModerationPending}, f.properties.lastFilter.Statuses)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "PENDING", page.Data[0].ModerationStatus)
}

func TestList_PageClamping(t *testing.T) {
	f := newPropertyFixture(t)
	f.seedProperty(t, entity.ModerationApproved)

	page, err := f.srv.List(context.Background(), request.PropertyListQuery{
		Page:     0,
		PageSize: 100,
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
}

func TestList_PagePastEndIsEmptyNotError(t *testing.T) {
	f := newPropertyFixture(t)
	f.seedProperty(t, entity.ModerationApproved)

	page, err := f.srv.List(context.Background(), request.PropertyListQuery{
		Page:     5,
		PageSize: 15,
	}, false)
	require.NoError(t, err)

	// Over-shooting the last page is an empty result, not a failure
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 5, page.Page)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestDelete(t *testing.T) {
	f := newPropertyFixture(t)
	property := f.seedProperty(t, entity.ModerationApproved)

	require.NoError(t, f.srv.Delete(context.Background(), property.ID.String()))
	assert.Empty(t, f.properties.properties)

	err := f.srv.Delete(context.Background(), property.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindProperty_BadID(t *testing.T) {
	f := newPropertyFixture(t)

	_, err := f.srv.GetByID(context.Background(), "not-a-uuid", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
