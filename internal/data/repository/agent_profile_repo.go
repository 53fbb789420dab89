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

type AgentProfileRepository interface {
	Create(ctx context.Context, profile *entity.AgentProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AgentProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AgentProfile, error)
	FindAll(ctx context.Context) ([]*entity.AgentProfile, error)
}

type agentProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAgentProfileRepository(db database.PgxIface, log *zap.Logger) AgentProfileRepository {
	return &agentProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "agent_profile")),
	}
}

const agentProfileColumns = `id, user_id, display_name, avatar_url, contact_email,
	       contact_phone, verified, created_at, updated_at`

func scanAgentProfile(row pgx.Row) (*entity.AgentProfile, error) {
	var p entity.AgentProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.DisplayName,
		&p.AvatarURL,
		&p.ContactEmail,
		&p.ContactPhone,
		&p.Verified,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *agentProfileRepository) Create(ctx context.Context, profile *entity.AgentProfile) error {
	query := `
		INSERT INTO agent_profiles (id, user_id, display_name, avatar_url, contact_email,
		                            contact_phone, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.DisplayName,
		profile.AvatarURL,
		profile.ContactEmail,
		profile.ContactPhone,
		profile.Verified,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create agent profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create agent profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *agentProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AgentProfile, error) {
	query := `SELECT ` + agentProfileColumns + ` FROM agent_profiles WHERE id = $1`

	profile, err := scanAgentProfile(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agent profile by ID",
			zap.Error(err),
			zap.String("agent_profile_id", id.String()),
		)
		return nil, fmt.Errorf("find agent profile by ID %s: %w", id.String(), err)
	}

	return profile, nil
}

func (r *agentProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AgentProfile, error) {
	query := `SELECT ` + agentProfileColumns + ` FROM agent_profiles WHERE user_id = $1`

	profile, err := scanAgentProfile(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agent profile by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find agent profile by user %s: %w", userID.String(), err)
	}

	return profile, nil
}

func (r *agentProfileRepository) FindAll(ctx context.Context) ([]*entity.AgentProfile, error) {
	query := `SELECT ` + agentProfileColumns + ` FROM agent_profiles ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find agent profiles", zap.Error(err))
		return nil, fmt.Errorf("find agent profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.AgentProfile
	for rows.Next() {
		profile, err := scanAgentProfile(rows)
		if err != nil {
			r.log.Error("Failed to scan agent profile row", zap.Error(err))
			return nil, fmt.Errorf("scan agent profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agent profile rows: %w", err)
	}

	return profiles, nil
}
