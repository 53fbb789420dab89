package repository

import (
	"real-estate-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	AgentProfile   AgentProfileRepository
	Property       PropertyRepository
	PropertyType   PropertyTypeRepository
	Characteristic CharacteristicRepository
	PasswordReset  PasswordResetRepository
	HeroSlide      HeroSlideRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		AgentProfile:   NewAgentProfileRepository(db, log),
		Property:       NewPropertyRepository(db, log),
		PropertyType:   NewPropertyTypeRepository(db, log),
		Characteristic: NewCharacteristicRepository(db, log),
		PasswordReset:  NewPasswordResetRepository(db, log),
		HeroSlide:      NewHeroSlideRepository(db, log),
	}
}
