package adaptor

import (
	"net/http"

	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/apperrors"
	"real-estate-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Property *PropertyHandler
	Filter   *FilterHandler
	Lookup   *LookupHandler
	Hero     *HeroHandler
	Agent    *AgentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Property: NewPropertyHandler(service.Property, log),
		Filter:   NewFilterHandler(service.Filter, log),
		Lookup:   NewLookupHandler(service.Lookup, log),
		Hero:     NewHeroHandler(service.Hero, log),
		Agent:    NewAgentHandler(service.Agent, log),
	}
}

// respondServiceError maps a service error to its HTTP status via the
// sentinel taxonomy. Unexpected errors get logged and return a generic
// message so internals do not leak to clients.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := apperrors.HTTPStatusFromError(err)
	if code == http.StatusInternalServerError {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" rejected", zap.Error(err), zap.Int("status", code))
	utils.ResponseJSON(w, code, false, err.Error(), nil, nil)
}

// identityFromContext builds the caller identity the property service
// applies its visibility rules against. Nil means unauthenticated.
func identityFromContext(r *http.Request) *usecase.Identity {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return nil
	}

	return &usecase.Identity{
		UserID: userID,
		Role:   roleFromString(role),
	}
}
