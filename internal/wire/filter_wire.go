package wire

import (
	"real-estate-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilter(r chi.Router, filterHandler *adaptor.FilterHandler) {
	r.Get("/api/filters/property-types", filterHandler.PropertyTypes)
	r.Get("/api/filters/property-characteristics", filterHandler.Characteristics)
}
