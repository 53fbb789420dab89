package response

import (
	"real-estate-backend/internal/data/entity"
)

// HeroSlideResponse keys match the portal frontend contract.
type HeroSlideResponse struct {
	ID      string `json:"id"`
	Titulo  string `json:"titulo"`
	Img     string `json:"img"`
	IsLocal bool   `json:"isLocal"`
}

func HeroSlideToResponse(slide *entity.HeroSlide) HeroSlideResponse {
	return HeroSlideResponse{
		ID:      slide.ID.String(),
		Titulo:  slide.Title,
		Img:     slide.Image,
		IsLocal: slide.IsLocal,
	}
}
