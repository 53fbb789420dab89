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

type PropertyTypeRepository interface {
	Create(ctx context.Context, propertyType *entity.PropertyType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PropertyType, error)
	FindAll(ctx context.Context) ([]*entity.PropertyType, error)
	Update(ctx context.Context, propertyType *entity.PropertyType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyTypeRepository(db database.PgxIface, log *zap.Logger) PropertyTypeRepository {
	return &propertyTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "property_type")),
	}
}

func (r *propertyTypeRepository) Create(ctx context.Context, propertyType *entity.PropertyType) error {
	query := `INSERT INTO property_types (id, key, name, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		propertyType.ID,
		propertyType.Key,
		propertyType.Name,
		propertyType.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property type",
			zap.Error(err),
			zap.String("key", propertyType.Key),
		)
		return fmt.Errorf("create property type %s: %w", propertyType.Key, err)
	}

	return nil
}

func (r *propertyTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PropertyType, error) {
	query := `SELECT id, key, name, created_at FROM property_types WHERE id = $1`

	var propertyType entity.PropertyType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&propertyType.ID,
		&propertyType.Key,
		&propertyType.Name,
		&propertyType.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property type",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find property type %s: %w", id.String(), err)
	}

	return &propertyType, nil
}

// FindAll returns types ordered by display name for the filter UI.
func (r *propertyTypeRepository) FindAll(ctx context.Context) ([]*entity.PropertyType, error) {
	query := `SELECT id, key, name, created_at FROM property_types ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find property types", zap.Error(err))
		return nil, fmt.Errorf("find property types: %w", err)
	}
	defer rows.Close()

	var types []*entity.PropertyType
	for rows.Next() {
		var propertyType entity.PropertyType
		if err := rows.Scan(
			&propertyType.ID,
			&propertyType.Key,
			&propertyType.Name,
			&propertyType.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan property type row: %w", err)
		}
		types = append(types, &propertyType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate property type rows: %w", err)
	}

	return types, nil
}

func (r *propertyTypeRepository) Update(ctx context.Context, propertyType *entity.PropertyType) error {
	query := `UPDATE property_types SET key = $2, name = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, propertyType.ID, propertyType.Key, propertyType.Name)
	if err != nil {
		r.log.Error("Failed to update property type",
			zap.Error(err),
			zap.String("id", propertyType.ID.String()),
		)
		return fmt.Errorf("update property type %s: %w", propertyType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property type %s not found", propertyType.ID.String())
	}

	return nil
}

func (r *propertyTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM property_types WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property type",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete property type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property type %s not found", id.String())
	}

	return nil
}

type CharacteristicRepository interface {
	Create(ctx context.Context, characteristic *entity.PropertyCharacteristic, options []*entity.CharacteristicOption) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PropertyCharacteristic, error)
	FindAll(ctx context.Context) ([]*entity.PropertyCharacteristic, error)
	FindOptions(ctx context.Context, characteristicID uuid.UUID) ([]*entity.CharacteristicOption, error)
	Update(ctx context.Context, characteristic *entity.PropertyCharacteristic) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddOption(ctx context.Context, option *entity.CharacteristicOption) error
	UpdateOption(ctx context.Context, option *entity.CharacteristicOption) error
	DeleteOption(ctx context.Context, optionID uuid.UUID) error
}

type characteristicRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCharacteristicRepository(db database.PgxIface, log *zap.Logger) CharacteristicRepository {
	return &characteristicRepository{
		db:  db,
		log: log.With(zap.String("repository", "characteristic")),
	}
}

// Create inserts the characteristic and its options in one transaction.
func (r *characteristicRepository) Create(ctx context.Context, characteristic *entity.PropertyCharacteristic, options []*entity.CharacteristicOption) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create characteristic: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO property_characteristics (id, key, label, type, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, query,
		characteristic.ID,
		characteristic.Key,
		characteristic.Label,
		characteristic.Type,
		characteristic.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create characteristic",
			zap.Error(err),
			zap.String("key", characteristic.Key),
		)
		return fmt.Errorf("create characteristic %s: %w", characteristic.Key, err)
	}

	optionQuery := `INSERT INTO characteristic_options (id, characteristic_id, label, value, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	for _, option := range options {
		if _, err := tx.Exec(ctx, optionQuery,
			option.ID,
			option.CharacteristicID,
			option.Label,
			option.Value,
			option.CreatedAt,
		); err != nil {
			return fmt.Errorf("create characteristic option %s: %w", option.Value, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create characteristic: %w", err)
	}

	return nil
}

func (r *characteristicRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PropertyCharacteristic, error) {
	query := `SELECT id, key, label, type, created_at FROM property_characteristics WHERE id = $1`

	var characteristic entity.PropertyCharacteristic
	err := r.db.QueryRow(ctx, query, id).Scan(
		&characteristic.ID,
		&characteristic.Key,
		&characteristic.Label,
		&characteristic.Type,
		&characteristic.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find characteristic",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find characteristic %s: %w", id.String(), err)
	}

	return &characteristic, nil
}

// FindAll returns characteristics ordered by label for the filter UI.
func (r *characteristicRepository) FindAll(ctx context.Context) ([]*entity.PropertyCharacteristic, error) {
	query := `SELECT id, key, label, type, created_at FROM property_characteristics ORDER BY label ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find characteristics", zap.Error(err))
		return nil, fmt.Errorf("find characteristics: %w", err)
	}
	defer rows.Close()

	var characteristics []*entity.PropertyCharacteristic
	for rows.Next() {
		var characteristic entity.PropertyCharacteristic
		if err := rows.Scan(
			&characteristic.ID,
			&characteristic.Key,
			&characteristic.Label,
			&characteristic.Type,
			&characteristic.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan characteristic row: %w", err)
		}
		characteristics = append(characteristics, &characteristic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characteristic rows: %w", err)
	}

	return characteristics, nil
}

func (r *characteristicRepository) FindOptions(ctx context.Context, characteristicID uuid.UUID) ([]*entity.CharacteristicOption, error) {
	query := `SELECT id, characteristic_id, label, value, created_at
		FROM characteristic_options
		WHERE characteristic_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, characteristicID)
	if err != nil {
		r.log.Error("Failed to find characteristic options",
			zap.Error(err),
			zap.String("characteristic_id", characteristicID.String()),
		)
		return nil, fmt.Errorf("find options for characteristic %s: %w", characteristicID.String(), err)
	}
	defer rows.Close()

	var options []*entity.CharacteristicOption
	for rows.Next() {
		var option entity.CharacteristicOption
		if err := rows.Scan(
			&option.ID,
			&option.CharacteristicID,
			&option.Label,
			&option.Value,
			&option.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan option row: %w", err)
		}
		options = append(options, &option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate option rows: %w", err)
	}

	return options, nil
}

func (r *characteristicRepository) Update(ctx context.Context, characteristic *entity.PropertyCharacteristic) error {
	query := `UPDATE property_characteristics SET key = $2, label = $3, type = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		characteristic.ID,
		characteristic.Key,
		characteristic.Label,
		characteristic.Type,
	)
	if err != nil {
		r.log.Error("Failed to update characteristic",
			zap.Error(err),
			zap.String("id", characteristic.ID.String()),
		)
		return fmt.Errorf("update characteristic %s: %w", characteristic.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("characteristic %s not found", characteristic.ID.String())
	}

	return nil
}

func (r *characteristicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM property_characteristics WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete characteristic",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete characteristic %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("characteristic %s not found", id.String())
	}

	return nil
}

func (r *characteristicRepository) AddOption(ctx context.Context, option *entity.CharacteristicOption) error {
	query := `INSERT INTO characteristic_options (id, characteristic_id, label, value, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		option.ID,
		option.CharacteristicID,
		option.Label,
		option.Value,
		option.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add characteristic option",
			zap.Error(err),
			zap.String("characteristic_id", option.CharacteristicID.String()),
		)
		return fmt.Errorf("add option %s: %w", option.Value, err)
	}

	return nil
}

func (r *characteristicRepository) UpdateOption(ctx context.Context, option *entity.CharacteristicOption) error {
	query := `UPDATE characteristic_options SET label = $2, value = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, option.ID, option.Label, option.Value)
	if err != nil {
		r.log.Error("Failed to update characteristic option",
			zap.Error(err),
			zap.String("option_id", option.ID.String()),
		)
		return fmt.Errorf("update option %s: %w", option.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("option %s not found", option.ID.String())
	}

	return nil
}

func (r *characteristicRepository) DeleteOption(ctx context.Context, optionID uuid.UUID) error {
	query := `DELETE FROM characteristic_options WHERE id = $1`

	result, err := r.db.Exec(ctx, query, optionID)
	if err != nil {
		r.log.Error("Failed to delete characteristic option",
			zap.Error(err),
			zap.String("option_id", optionID.String()),
		)
		return fmt.Errorf("delete option %s: %w", optionID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("option %s not found", optionID.String())
	}

	return nil
}
