package usecase

import (
	"context"
	"testing"
	"time"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/dto/request"
	"real-estate-backend/pkg/apperrors"
	"real-estate-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (*authService, *fakeUserRepo, *fakeAgentProfileRepo, *fakePasswordResetRepo) {
	t.Helper()
	repo := newTestRepository()
	srv := NewAuthService(repo, testConfig(), zap.NewNop()).(*authService)
	return srv,
		repo.User.(*fakeUserRepo),
		repo.AgentProfile.(*fakeAgentProfileRepo),
		repo.PasswordReset.(*fakePasswordResetRepo)
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:    email,
		Password: "s3cretpass",
		FullName: "Ana Reyes",
	}
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, status entity.UserStatus) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:        email,
		PasswordHash: hash,
		FullName:     "Ana Reyes",
		Role:         entity.RoleBuyer,
		Status:       status,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestRegister_DefaultsToBuyer(t *testing.T) {
	srv, _, profiles, _ := newAuthService(t)

	resp, err := srv.Register(context.Background(), registerReq("ana@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "buyer", resp.User.Role)
	assert.Equal(t, "active", resp.User.Status)
	assert.Empty(t, profiles.profiles)
}

func TestRegister_AgentGetsProfile(t *testing.T) {
	srv, _, profiles, _ := newAuthService(t)

	role := "agent"
	req := registerReq("agent@example.com")
	req.Role = &role

	resp, err := srv.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "agent", resp.User.Role)

	require.Len(t, profiles.profiles, 1)
	for _, profile := range profiles.profiles {
		assert.Equal(t, "Ana Reyes", profile.DisplayName)
		require.NotNil(t, profile.ContactEmail)
		assert.Equal(t, "agent@example.com", *profile.ContactEmail)
		assert.False(t, profile.Verified)
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	srv, _, _, _ := newAuthService(t)

	_, err := srv.Register(context.Background(), registerReq("ana@example.com"))
	require.NoError(t, err)

	_, err = srv.Register(context.Background(), registerReq("ana@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestLogin(t *testing.T) {
	srv, users, _, _ := newAuthService(t)
	seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	resp, err := srv.Login(context.Background(), &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	srv, _, _, _ := newAuthService(t)

	_, err := srv.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, users, _, _ := newAuthService(t)
	seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	_, err := srv.Login(context.Background(), &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrongwrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_SuspendedBeforePasswordCheck(t *testing.T) {
	srv, users, _, _ := newAuthService(t)
	seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusSuspended)

	// Even the correct password yields Forbidden, not Unauthorized
	_, err := srv.Login(context.Background(), &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestChangePassword(t *testing.T) {
	srv, users, _, _ := newAuthService(t)
	user := seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	err := srv.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "s3cretpass",
		NewPassword:     "newsecret1",
	})
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("newsecret1", users.users[user.ID].PasswordHash))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	srv, users, _, _ := newAuthService(t)
	user := seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	err := srv.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "wrongwrong",
		NewPassword:     "newsecret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRequestPasswordReset_UnknownEmailSameShape(t *testing.T) {
	srv, users, _, resets := newAuthService(t)
	seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	known, err := srv.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)
	unknown, err := srv.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)

	// Message identical either way; only the stored state differs
	assert.Equal(t, known.Message, unknown.Message)
	assert.Nil(t, unknown.Token)
	assert.Len(t, resets.tokens, 1)
}

func TestRequestPasswordReset_TokenStoredHashed(t *testing.T) {
	srv, users, _, resets := newAuthService(t)
	seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	resp, err := srv.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)

	// Non-production config leaks the raw token for local testing
	require.NotNil(t, resp.Token)

	expectedHash := hashResetToken(*resp.Token)
	require.Len(t, resets.tokens, 1)
	for _, token := range resets.tokens {
		assert.Equal(t, expectedHash, token.TokenHash)
		assert.NotEqual(t, *resp.Token, token.TokenHash)
	}
}

func TestRequestPasswordReset_ProductionNeverLeaksToken(t *testing.T) {
	repo := newTestRepository()
	cfg := testConfig()
	cfg.App.Env = "production"
	srv := NewAuthService(repo, cfg, zap.NewNop()).(*authService)

	users := repo.User.(*fakeUserRepo)
	resets := repo.PasswordReset.(*fakePasswordResetRepo)
	seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	known, err := srv.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)
	unknown, err := srv.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)

	// The token is still stored server-side, but never leaves the API
	assert.Nil(t, known.Token)
	assert.Nil(t, unknown.Token)
	assert.Equal(t, known.Message, unknown.Message)
	assert.Len(t, resets.tokens, 1)
}

func TestResetPassword_SingleUse(t *testing.T) {
	srv, users, _, _ := newAuthService(t)
	user := seedUser(t, users, "ana@example.com", "s3cretpass", entity.UserStatusActive)

	resp, err := srv.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, resp.Token)

	err = srv.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       *resp.Token,
		NewPassword: "newsecret1",
	})
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newsecret1", users.users[user.ID].PasswordHash))

	// Replaying the same token must fail
	err = srv.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       *resp.Token,
		NewPassword: "anothersecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResetPassword_BogusToken(t *testing.T) {
	srv, _, _, _ := newAuthService(t)

	err := srv.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       "deadbeefdeadbeef",
		NewPassword: "newsecret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
