package adaptor

import (
	"net/http"

	"real-estate-backend/internal/usecase"
	"real-estate-backend/pkg/utils"

	"go.uber.org/zap"
)

type HeroHandler struct {
	service usecase.HeroService
	log     *zap.Logger
}

func NewHeroHandler(service usecase.HeroService, log *zap.Logger) *HeroHandler {
	return &HeroHandler{
		service: service,
		log:     log.With(zap.String("handler", "hero")),
	}
}

// Slides handles GET /api/hero-slides
func (h *HeroHandler) Slides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.service.ListSlides(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list hero slides")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, slides)
}
