package wire

import (
	"real-estate-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHero(r chi.Router, heroHandler *adaptor.HeroHandler) {
	r.Get("/api/hero-slides", heroHandler.Slides)
}
