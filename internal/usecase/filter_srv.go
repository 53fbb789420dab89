package usecase

import (
	"context"
	"fmt"

	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/dto/response"

	"go.uber.org/zap"
)

// FilterService serves the public filter metadata endpoints the search
// UI builds its controls from.
type FilterService interface {
	ListPropertyTypes(ctx context.Context) ([]response.PropertyTypeFilter, error)
	ListCharacteristics(ctx context.Context) ([]response.CharacteristicFilter, error)
}

type filterService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFilterService(
	repo *repository.Repository,
	log *zap.Logger,
) FilterService {
	return &filterService{
		repo: repo,
		log:  log.With(zap.String("service", "filter")),
	}
}

func (s *filterService) ListPropertyTypes(ctx context.Context) ([]response.PropertyTypeFilter, error) {
	types, err := s.repo.PropertyType.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list property types", zap.Error(err))
		return nil, fmt.Errorf("list property types: %w", err)
	}

	filters := make([]response.PropertyTypeFilter, 0, len(types))
	for _, propertyType := range types {
		filters = append(filters, response.PropertyTypeToFilter(propertyType))
	}

	return filters, nil
}

func (s *filterService) ListCharacteristics(ctx context.Context) ([]response.CharacteristicFilter, error) {
	characteristics, err := s.repo.Characteristic.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list characteristics", zap.Error(err))
		return nil, fmt.Errorf("list characteristics: %w", err)
	}

	filters := make([]response.CharacteristicFilter, 0, len(characteristics))
	for _, characteristic := range characteristics {
		options, err := s.repo.Characteristic.FindOptions(ctx, characteristic.ID)
		if err != nil {
			return nil, fmt.Errorf("list options for %s: %w", characteristic.Key, err)
		}
		filters = append(filters, response.CharacteristicToFilter(characteristic, options))
	}

	return filters, nil
}
