package usecase

import (
	"context"
	"fmt"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/dto/response"
	"real-estate-backend/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgentService is the admin view over agent profiles.
type AgentService interface {
	List(ctx context.Context) ([]response.AgentResponse, error)
	GetByID(ctx context.Context, agentID string) (*response.AgentDetailResponse, error)
}

type agentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAgentService(
	repo *repository.Repository,
	log *zap.Logger,
) AgentService {
	return &agentService{
		repo: repo,
		log:  log.With(zap.String("service", "agent")),
	}
}

func (s *agentService) List(ctx context.Context) ([]response.AgentResponse, error) {
	profiles, err := s.repo.AgentProfile.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list agent profiles", zap.Error(err))
		return nil, fmt.Errorf("list agent profiles: %w", err)
	}

	responses := make([]response.AgentResponse, 0, len(profiles))
	for _, profile := range profiles {
		user, count, err := s.loadAgentExtras(ctx, profile)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response.AgentToResponse(profile, user, count))
	}

	return responses, nil
}

func (s *agentService) GetByID(ctx context.Context, agentID string) (*response.AgentDetailResponse, error) {
	id, err := uuid.Parse(agentID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid agent id")
	}

	profile, err := s.repo.AgentProfile.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find agent profile", zap.Error(err), zap.String("agent_id", agentID))
		return nil, fmt.Errorf("find agent profile: %w", err)
	}
	if profile == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "agent not found")
	}

	user, count, err := s.loadAgentExtras(ctx, profile)
	if err != nil {
		return nil, err
	}

	properties, err := s.repo.Property.FindByAgentProfileID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list agent properties: %w", err)
	}

	propertyResponses := make([]response.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, response.PropertyToResponse(property, profile, user))
	}

	return &response.AgentDetailResponse{
		AgentResponse: response.AgentToResponse(profile, user, count),
		Properties:    propertyResponses,
	}, nil
}

func (s *agentService) loadAgentExtras(ctx context.Context, profile *entity.AgentProfile) (*entity.User, int64, error) {
	user, err := s.repo.User.FindByID(ctx, profile.UserID)
	if err != nil {
		s.log.Error("Failed to find agent user",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return nil, 0, fmt.Errorf("find agent user: %w", err)
	}

	count, err := s.repo.Property.CountByAgentProfileID(ctx, profile.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("count agent properties: %w", err)
	}

	return user, count, nil
}
