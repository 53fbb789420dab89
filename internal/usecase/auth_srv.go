package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/internal/dto/request"
	"real-estate-backend/internal/dto/response"
	"real-estate-backend/pkg/apperrors"
	"real-estate-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, email string) (*response.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// Reject duplicate emails
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrConflict, "email already in use")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleBuyer
	if req.Role != nil {
		role = entity.UserRole(*req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		Status:       entity.UserStatusActive,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Agents get a default public profile right away
	if user.Role == entity.RoleAgent {
		profile := &entity.AgentProfile{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:       user.ID,
			DisplayName:  user.FullName,
			ContactEmail: &user.Email,
			ContactPhone: user.Phone,
			Verified:     false,
		}
		if err := s.repo.AgentProfile.Create(ctx, profile); err != nil {
			s.log.Error("Failed to create agent profile",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("create agent profile: %w", err)
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return response.AuthToResponse(user, token), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
	}

	if user.Status != entity.UserStatusActive {
		s.log.Warn("Suspended user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "account suspended")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return response.AuthToResponse(user, token), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		s.log.Warn("Change password with wrong current password",
			zap.String("user_id", userID.String()))
		return apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePasswordHash(ctx, userID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

// RequestPasswordReset always returns the same success shape so callers
// cannot probe which emails are registered. The raw token leaves the
// process only outside production.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (*response.ForgotPasswordResponse, error) {
	resp := &response.ForgotPasswordResponse{
		Message: "If the account exists, a reset email was sent.",
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return resp, nil
	}

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err))
		return nil, fmt.Errorf("generate reset token: %w", err)
	}

	token := &entity.PasswordResetToken{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(time.Duration(s.config.Reset.ExpiryMinutes) * time.Minute),
	}

	if err := s.repo.PasswordReset.Create(ctx, token); err != nil {
		s.log.Error("Failed to store reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("store reset token: %w", err)
	}

	s.log.Info("Password reset requested",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", token.ExpiresAt))

	if !s.config.IsProduction() {
		resp.Token = &rawToken
	}

	return resp, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	tokenHash := hashResetToken(req.Token)

	token, err := s.repo.PasswordReset.FindValidByHash(ctx, tokenHash)
	if err != nil {
		s.log.Error("Failed to look up reset token", zap.Error(err))
		return fmt.Errorf("find reset token: %w", err)
	}
	if token == nil {
		return apperrors.Wrap(apperrors.ErrValidation, "invalid or expired token")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePasswordHash(ctx, token.UserID, hashedPassword); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", token.UserID.String()))
		return fmt.Errorf("reset password: %w", err)
	}

	if err := s.repo.PasswordReset.MarkUsed(ctx, token.ID); err != nil {
		s.log.Error("Failed to consume reset token", zap.Error(err), zap.String("token_id", token.ID.String()))
		return fmt.Errorf("consume reset token: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", token.UserID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) issueToken(user *entity.User) (string, error) {
	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	return utils.GenerateToken(user.ID.String(), string(user.Role), expiry)
}

func generateResetToken() (raw, hash string, err error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
