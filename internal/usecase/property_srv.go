package usecase

import (
	"context"
	"fmt"
	"time"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/dto/request"
	"real-estate-backend/internal/dto/response"
	"real-estate-backend/pkg/apperrors"
	"real-estate-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity is the authenticated caller attached by the auth middleware.
// A nil *Identity means the request is unauthenticated.
type Identity struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == entity.RoleAdmin
}

type PropertyService interface {
	List(ctx context.Context, q request.PropertyListQuery, adminView bool) (*response.PageResponse[response.PropertyResponse], error)
	GetByID(ctx context.Context, propertyID string, viewer *Identity) (*response.PropertyResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]response.PropertyResponse, error)
	UpdateMine(ctx context.Context, userID uuid.UUID, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error)
	AdminUpdate(ctx context.Context, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error)
	Approve(ctx context.Context, propertyID string) (*response.PropertyResponse, error)
	Reject(ctx context.Context, propertyID string) (*response.PropertyResponse, error)
	Delete(ctx context.Context, propertyID string) error
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(
	repo *repository.Repository,
	log *zap.Logger,
) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log.With(zap.String("service", "property")),
	}
}

// List runs a filtered, paginated listing query. Public views are
// pinned to APPROVED regardless of the supplied statuses; admin views
// default to all three statuses and honor an explicit filter.
func (s *propertyService) List(ctx context.Context, q request.PropertyListQuery, adminView bool) (*response.PageResponse[response.PropertyResponse], error) {
	filter := repository.PropertyFilter{
		ListingTypes: q.ListingTypes,
		Types:        q.Types,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Location:     q.Location,
		Bedrooms:     q.Bedrooms,
		Bathrooms:    q.Bathrooms,
		AreaMin:      q.AreaMin,
		AreaMax:      q.AreaMax,
		Amenities:    q.Amenities,
	}

	if adminView {
		filter.Statuses = parseStatuses(q.Statuses)
		if len(filter.Statuses) == 0 {
			filter.Statuses = []entity.ModerationStatus{
				entity.ModerationPending,
				entity.ModerationApproved,
				entity.ModerationRejected,
			}
		}
	}

	page := utils.ClampPage(q.Page)
	pageSize := utils.ClampPageSize(q.PageSize)
	offset := utils.CalculateOffset(page, pageSize)

	total, err := s.repo.Property.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count properties", zap.Error(err))
		return nil, fmt.Errorf("count properties: %w", err)
	}

	properties, err := s.repo.Property.FindAll(ctx, filter, pageSize, offset)
	if err != nil {
		s.log.Error("Failed to list properties",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("page_size", pageSize),
		)
		return nil, fmt.Errorf("list properties: %w", err)
	}

	responses, err := s.toResponses(ctx, properties)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Properties listed",
		zap.Int("count", len(properties)),
		zap.Int64("total", total),
		zap.Int("page", page),
	)

	return response.NewPageResponse(responses, page, pageSize, total), nil
}

// GetByID applies the visibility rule: non-APPROVED properties exist
// only for their owning agent and admins; everyone else gets not-found
// so the record's existence does not leak.
func (s *propertyService) GetByID(ctx context.Context, propertyID string, viewer *Identity) (*response.PropertyResponse, error) {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.ModerationStatus != entity.ModerationApproved && !s.canViewHidden(ctx, property, viewer) {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "property not found")
	}

	return s.toResponse(ctx, property)
}

func (s *propertyService) Create(ctx context.Context, userID uuid.UUID, req *request.PropertyRequest) (*response.PropertyResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "user not found")
	}
	if user.Status != entity.UserStatusActive {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "account suspended")
	}

	profile, err := s.ensureAgentProfile(ctx, user, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	property := &entity.Property{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:            req.Title,
		Price:            req.Price,
		Currency:         entity.Currency(req.Currency),
		Location:         req.Location,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Area:             req.Area,
		Type:             req.Type,
		ListingType:      entity.ListingType(req.ListingType),
		ModerationStatus: entity.ModerationPending,
		Description:      req.Description,
		Images:           req.Images,
		Amenities:        req.Amenities,
		AgentProfileID:   profile.ID,
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.log.Error("Failed to create property", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("agent_profile_id", profile.ID.String()),
	)

	return s.toResponse(ctx, property)
}

func (s *propertyService) ListMine(ctx context.Context, userID uuid.UUID) ([]response.PropertyResponse, error) {
	profile, err := s.repo.AgentProfile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find agent profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find agent profile: %w", err)
	}
	if profile == nil {
		return []response.PropertyResponse{}, nil
	}

	properties, err := s.repo.Property.FindByAgentProfileID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list own properties: %w", err)
	}

	return s.toResponses(ctx, properties)
}

// UpdateMine is the owner edit path: any accepted edit forces the
// property back to PENDING for re-review.
func (s *propertyService) UpdateMine(ctx context.Context, userID uuid.UUID, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error) {
	profile, err := s.repo.AgentProfile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find agent profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find agent profile: %w", err)
	}
	if profile == nil {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "no agent profile")
	}

	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.AgentProfileID != profile.ID {
		s.log.Warn("Agent tried to edit another agent's property",
			zap.String("user_id", userID.String()),
			zap.String("property_id", propertyID),
		)
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "not the property owner")
	}

	applyPropertyUpdate(property, req)
	property.ModerationStatus = entity.ModerationPending
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property: %w", err)
	}

	s.log.Info("Property edited by owner, re-queued for review",
		zap.String("property_id", propertyID))

	return s.toResponse(ctx, property)
}

// AdminUpdate preserves the current moderation status unless the
// payload includes one, in contrast to the owner edit path.
func (s *propertyService) AdminUpdate(ctx context.Context, propertyID string, req *request.PropertyUpdateRequest) (*response.PropertyResponse, error) {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	applyPropertyUpdate(property, req)
	if req.ModerationStatus != nil {
		status, err := entity.ParseModerationStatus(*req.ModerationStatus)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid moderation status")
		}
		property.ModerationStatus = status
	}
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property: %w", err)
	}

	return s.toResponse(ctx, property)
}

func (s *propertyService) Approve(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	return s.moderate(ctx, propertyID, entity.ModerationApproved)
}

func (s *propertyService) Reject(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	return s.moderate(ctx, propertyID, entity.ModerationRejected)
}

func (s *propertyService) Delete(ctx context.Context, propertyID string) error {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return err
	}

	if err := s.repo.Property.Delete(ctx, property.ID); err != nil {
		s.log.Error("Failed to delete property", zap.Error(err), zap.String("property_id", propertyID))
		return fmt.Errorf("delete property: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

// moderate checks the transition table before moving a property.
func (s *propertyService) moderate(ctx context.Context, propertyID string, to entity.ModerationStatus) (*response.PropertyResponse, error) {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(property.ModerationStatus, to) {
		s.log.Warn("Illegal moderation transition",
			zap.String("property_id", propertyID),
			zap.String("from", string(property.ModerationStatus)),
			zap.String("to", string(to)),
		)
		return nil, apperrors.Wrap(apperrors.ErrConflict, "cannot move property from %s to %s",
			property.ModerationStatus, to)
	}

	if err := s.repo.Property.UpdateStatus(ctx, property.ID, to); err != nil {
		s.log.Error("Failed to update moderation status",
			zap.Error(err),
			zap.String("property_id", propertyID),
		)
		return nil, fmt.Errorf("update moderation status: %w", err)
	}

	property.ModerationStatus = to

	s.log.Info("Property moderated",
		zap.String("property_id", propertyID),
		zap.String("status", string(to)),
	)

	return s.toResponse(ctx, property)
}

func (s *propertyService) findProperty(ctx context.Context, propertyID string) (*entity.Property, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid property id")
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find property", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("find property: %w", err)
	}
	if property == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "property not found")
	}

	return property, nil
}

func (s *propertyService) canViewHidden(ctx context.Context, property *entity.Property, viewer *Identity) bool {
	if viewer.IsAdmin() {
		return true
	}
	if viewer == nil || viewer.Role != entity.RoleAgent {
		return false
	}

	profile, err := s.repo.AgentProfile.FindByUserID(ctx, viewer.UserID)
	if err != nil {
		s.log.Error("Failed to resolve viewer profile",
			zap.Error(err),
			zap.String("user_id", viewer.UserID.String()),
		)
		return false
	}

	return profile != nil && profile.ID == property.AgentProfileID
}

// ensureAgentProfile returns the caller's profile, lazily creating a
// default one on first property submission.
func (s *propertyService) ensureAgentProfile(ctx context.Context, user *entity.User, req *request.PropertyRequest) (*entity.AgentProfile, error) {
	profile, err := s.repo.AgentProfile.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to find agent profile", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("find agent profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	displayName := user.FullName
	if req.ContactName != nil && *req.ContactName != "" {
		displayName = *req.ContactName
	}
	contactEmail := &user.Email
	if req.ContactEmail != nil && *req.ContactEmail != "" {
		contactEmail = req.ContactEmail
	}
	contactPhone := user.Phone
	if req.ContactPhone != nil && *req.ContactPhone != "" {
		contactPhone = req.ContactPhone
	}

	now := time.Now()
	profile = &entity.AgentProfile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       user.ID,
		DisplayName:  displayName,
		AvatarURL:    req.ContactAvatar,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		Verified:     false,
	}

	if err := s.repo.AgentProfile.Create(ctx, profile); err != nil {
		s.log.Error("Failed to create agent profile", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create agent profile: %w", err)
	}

	s.log.Info("Agent profile created on first submission",
		zap.String("user_id", user.ID.String()),
		zap.String("agent_profile_id", profile.ID.String()),
	)

	return profile, nil
}

func (s *propertyService) toResponse(ctx context.Context, property *entity.Property) (*response.PropertyResponse, error) {
	profile, owner := s.resolveAgent(ctx, property.AgentProfileID)
	resp := response.PropertyToResponse(property, profile, owner)
	return &resp, nil
}

func (s *propertyService) toResponses(ctx context.Context, properties []*entity.Property) ([]response.PropertyResponse, error) {
	// Profiles repeat across a page; resolve each once
	type agentPair struct {
		profile *entity.AgentProfile
		owner   *entity.User
	}
	cache := make(map[uuid.UUID]agentPair)

	responses := make([]response.PropertyResponse, len(properties))
	for i, property := range properties {
		pair, ok := cache[property.AgentProfileID]
		if !ok {
			pair.profile, pair.owner = s.resolveAgent(ctx, property.AgentProfileID)
			cache[property.AgentProfileID] = pair
		}
		responses[i] = response.PropertyToResponse(property, pair.profile, pair.owner)
	}

	return responses, nil
}

// resolveAgent loads the agent block for a response; failures degrade
// to a response without agent contact rather than failing the request.
func (s *propertyService) resolveAgent(ctx context.Context, agentProfileID uuid.UUID) (*entity.AgentProfile, *entity.User) {
	profile, err := s.repo.AgentProfile.FindByID(ctx, agentProfileID)
	if err != nil || profile == nil {
		if err != nil {
			s.log.Warn("Failed to load agent profile for response",
				zap.Error(err),
				zap.String("agent_profile_id", agentProfileID.String()),
			)
		}
		return nil, nil
	}

	owner, err := s.repo.User.FindByID(ctx, profile.UserID)
	if err != nil {
		s.log.Warn("Failed to load agent user for response",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
	}

	return profile, owner
}

func applyPropertyUpdate(property *entity.Property, req *request.PropertyUpdateRequest) {
	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Currency != nil {
		property.Currency = entity.Currency(*req.Currency)
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.Area != nil {
		property.Area = *req.Area
	}
	if req.Type != nil {
		property.Type = *req.Type
	}
	if req.ListingType != nil {
		property.ListingType = entity.ListingType(*req.ListingType)
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Images != nil {
		property.Images = req.Images
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
}

func parseStatuses(raw []string) []entity.ModerationStatus {
	var statuses []entity.ModerationStatus
	for _, value := range raw {
		if status, err := entity.ParseModerationStatus(value); err == nil {
			statuses = append(statuses, status)
		}
	}
	return statuses
}
