package wire

import (
	"real-estate-backend/internal/adaptor"
	"real-estate-backend/internal/data/entity"
	"real-estate-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Filter vocabulary CRUD. Reads are public, mutations admin-only.
func wireLookup(
	r chi.Router,
	lookupHandler *adaptor.LookupHandler,
	log *zap.Logger,
) {
	adminOnly := middleware.RequireRole(log, string(entity.RoleAdmin))

	r.Route("/api/property-types", func(r chi.Router) {
		r.Get("/", lookupHandler.ListPropertyTypes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(log), adminOnly)
			r.Post("/", lookupHandler.CreatePropertyType)
			r.Put("/{id}", lookupHandler.UpdatePropertyType)
			r.Delete("/{id}", lookupHandler.DeletePropertyType)
		})
	})

	r.Route("/api/property-characteristics", func(r chi.Router) {
		r.Get("/", lookupHandler.ListCharacteristics)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(log), adminOnly)
			r.Post("/", lookupHandler.CreateCharacteristic)
			r.Put("/options/{id}", lookupHandler.UpdateOption)
			r.Delete("/options/{id}", lookupHandler.DeleteOption)
			r.Put("/{id}", lookupHandler.UpdateCharacteristic)
			r.Delete("/{id}", lookupHandler.DeleteCharacteristic)
			r.Post("/{id}/options", lookupHandler.AddOption)
		})
	})
}
