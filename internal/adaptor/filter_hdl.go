package adaptor

import (
	"net/http"

	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/utils"

	"go.uber.org/zap"
)

type FilterHandler struct {
	service usecase.FilterService
	log     *zap.Logger
}

func NewFilterHandler(service usecase.FilterService, log *zap.Logger) *FilterHandler {
	return &FilterHandler{
		service: service,
		log:     log.With(zap.String("handler", "filter")),
	}
}

// PropertyTypes handles GET /api/filters/property-types
func (h *FilterHandler) PropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListPropertyTypes(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list property type filters")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, types)
}

// Characteristics handles GET /api/filters/property-characteristics
func (h *FilterHandler) Characteristics(w http.ResponseWriter, r *http.Request) {
	characteristics, err := h.service.ListCharacteristics(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list characteristic filters")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, characteristics)
}
