package usecase

import (
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Property PropertyService
	Filter   FilterService
	Lookup   LookupService
	Hero     HeroService
	Agent    AgentService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Property: NewPropertyService(repo, log),
		Filter:   NewFilterService(repo, log),
		Lookup:   NewLookupService(repo, log),
		Hero:     NewHeroService(repo, log),
		Agent:    NewAgentService(repo, log),
	}
}
