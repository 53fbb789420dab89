package repository

import (
	"context"
	"fmt"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindAll(ctx context.Context, filter PropertyFilter, limit, offset int) ([]*entity.Property, error)
	Count(ctx context.Context, filter PropertyFilter) (int64, error)
	FindByAgentProfileID(ctx context.Context, agentProfileID uuid.UUID) ([]*entity.Property, error)
	CountByAgentProfileID(ctx context.Context, agentProfileID uuid.UUID) (int64, error)
	Update(ctx context.Context, property *entity.Property) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

const propertyColumns = `id, title, price, currency, location, bedrooms, bathrooms, area,
	       type, listing_type, moderation_status, description, images, amenities,
	       agent_profile_id, created_at, updated_at`

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.Currency,
		&p.Location,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Area,
		&p.Type,
		&p.ListingType,
		&p.ModerationStatus,
		&p.Description,
		&p.Images,
		&p.Amenities,
		&p.AgentProfileID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, price, currency, location, bedrooms, bathrooms,
		                        area, type, listing_type, moderation_status, description,
		                        images, amenities, agent_profile_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Price,
		property.Currency,
		property.Location,
		property.Bedrooms,
		property.Bathrooms,
		property.Area,
		property.Type,
		property.ListingType,
		property.ModerationStatus,
		property.Description,
		property.Images,
		property.Amenities,
		property.AgentProfileID,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("title", property.Title),
		)
		return fmt.Errorf("create property: %w", err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return property, nil
}

func (r *propertyRepository) FindAll(ctx context.Context, filter PropertyFilter, limit, offset int) ([]*entity.Property, error) {
	where, args := buildPropertyPredicate(filter)
	query := fmt.Sprintf(`SELECT %s FROM properties%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		propertyColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find properties",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context, filter PropertyFilter) (int64, error) {
	where, args := buildPropertyPredicate(filter)
	query := `SELECT COUNT(*) FROM properties` + where

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count properties", zap.Error(err))
		return 0, fmt.Errorf("count properties: %w", err)
	}

	return total, nil
}

func (r *propertyRepository) FindByAgentProfileID(ctx context.Context, agentProfileID uuid.UUID) ([]*entity.Property, error) {
	query := `SELECT ` + propertyColumns + `
		FROM properties
		WHERE agent_profile_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, agentProfileID)
	if err != nil {
		r.log.Error("Failed to find properties by agent",
			zap.Error(err),
			zap.String("agent_profile_id", agentProfileID.String()),
		)
		return nil, fmt.Errorf("find properties by agent %s: %w", agentProfileID.String(), err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) CountByAgentProfileID(ctx context.Context, agentProfileID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM properties WHERE agent_profile_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, query, agentProfileID).Scan(&total); err != nil {
		r.log.Error("Failed to count properties by agent",
			zap.Error(err),
			zap.String("agent_profile_id", agentProfileID.String()),
		)
		return 0, fmt.Errorf("count properties by agent: %w", err)
	}

	return total, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET title = $2, price = $3, currency = $4, location = $5, bedrooms = $6,
		    bathrooms = $7, area = $8, type = $9, listing_type = $10,
		    moderation_status = $11, description = $12, images = $13,
		    amenities = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Price,
		property.Currency,
		property.Location,
		property.Bedrooms,
		property.Bathrooms,
		property.Area,
		property.Type,
		property.ListingType,
		property.ModerationStatus,
		property.Description,
		property.Images,
		property.Amenities,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID.String())
	}

	return nil
}

func (r *propertyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error {
	query := `UPDATE properties SET moderation_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update property status",
			zap.Error(err),
			zap.String("property_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update property status %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	r.log.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}
