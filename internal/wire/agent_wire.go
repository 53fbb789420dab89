package wire

import (
	"real-estate-backend/internal/adaptor"
	"real-estate-backend/internal/data/entity"
	"real-estate-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAgent(
	r chi.Router,
	agentHandler *adaptor.AgentHandler,
	log *zap.Logger,
) {
	r.Route("/api/admin/agents", func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Get("/", agentHandler.List)
		r.Get("/{id}", agentHandler.Get)
	})
}
