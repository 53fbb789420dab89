package repository

import (
	"context"
	"fmt"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/pkg/database"

	"go.uber.org/zap"
)

type HeroSlideRepository interface {
	FindAll(ctx context.Context) ([]*entity.HeroSlide, error)
}

type heroSlideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHeroSlideRepository(db database.PgxIface, log *zap.Logger) HeroSlideRepository {
	return &heroSlideRepository{
		db:  db,
		log: log.With(zap.String("repository", "hero_slide")),
	}
}

// FindAll returns slides by explicit sort order ascending.
func (r *heroSlideRepository) FindAll(ctx context.Context) ([]*entity.HeroSlide, error) {
	query := `SELECT id, title, image, is_local, sort_order, created_at
		FROM hero_slides
		ORDER BY sort_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find hero slides", zap.Error(err))
		return nil, fmt.Errorf("find hero slides: %w", err)
	}
	defer rows.Close()

	var slides []*entity.HeroSlide
	for rows.Next() {
		var slide entity.HeroSlide
		if err := rows.Scan(
			&slide.ID,
			&slide.Title,
			&slide.Image,
			&slide.IsLocal,
			&slide.SortOrder,
			&slide.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hero slide row: %w", err)
		}
		slides = append(slides, &slide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hero slide rows: %w", err)
	}

	return slides, nil
}
