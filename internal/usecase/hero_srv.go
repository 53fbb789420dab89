package usecase

import (
	"context"
	"fmt"

	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/dto/response"

	"go.uber.org/zap"
)

type HeroService interface {
	ListSlides(ctx context.Context) ([]response.HeroSlideResponse, error)
}

type heroService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHeroService(
	repo *repository.Repository,
	log *zap.Logger,
) HeroService {
	return &heroService{
		repo: repo,
		log:  log.With(zap.String("service", "hero")),
	}
}

func (s *heroService) ListSlides(ctx context.Context) ([]response.HeroSlideResponse, error) {
	slides, err := s.repo.HeroSlide.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list hero slides", zap.Error(err))
		return nil, fmt.Errorf("list hero slides: %w", err)
	}

	responses := make([]response.HeroSlideResponse, 0, len(slides))
	for _, slide := range slides {
		responses = append(responses, response.HeroSlideToResponse(slide))
	}

	return responses, nil
}
