package wire

import (
	"real-estate-backend/internal/adaptor"
	"real-estate-backend/internal/data/entity"
	"real-estate-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	log *zap.Logger,
) {
	agentOrAdmin := middleware.RequireRole(log, string(entity.RoleAgent), string(entity.RoleAdmin))
	adminOnly := middleware.RequireRole(log, string(entity.RoleAdmin))

	r.Route("/api/properties", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", propertyHandler.List)

		// ==================== OWNER ROUTES ====================
		// Registered before /{id} so "me" never matches as an id
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(log))
			r.Get("/me/properties", propertyHandler.ListMine)
			r.Put("/me/properties/{id}", propertyHandler.UpdateMine)
			r.With(agentOrAdmin).Post("/", propertyHandler.Create)
		})

		// Optional auth: owners and admins can fetch non-approved rows
		r.With(middleware.OptionalAuth()).Get("/{id}", propertyHandler.Get)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(log), adminOnly)
			r.Put("/{id}", propertyHandler.AdminUpdate)
			r.Put("/{id}/approve", propertyHandler.Approve)
			r.Put("/{id}/reject", propertyHandler.Reject)
			r.Delete("/{id}", propertyHandler.Delete)
		})
	})

	r.With(middleware.RequireAuth(log), adminOnly).
		Get("/api/admin/properties", propertyHandler.AdminList)
}
