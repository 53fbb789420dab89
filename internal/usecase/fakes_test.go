package usecase

import (
	"context"
	"os"
	"testing"
	"time"

	"real-estate-backend/internal/data/entity"
	"real-estate-backend/internal/data/repository"
	"real-estate-backend/pkg/utils"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	utils.InitTokenAuth("test-secret")
	os.Exit(m.Run())
}

func testConfig() *utils.Config {
	return &utils.Config{
		App:   utils.AppConfig{Env: "test"},
		JWT:   utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Reset: utils.ResetConfig{ExpiryMinutes: 30},
	}
}

// In-memory repository fakes. They implement the repository interfaces
// over maps; the property fake additionally records the last filter so
// tests can assert what the service asked for.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	if user, ok := f.users[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

type fakeAgentProfileRepo struct {
	profiles map[uuid.UUID]*entity.AgentProfile
}

func newFakeAgentProfileRepo() *fakeAgentProfileRepo {
	return &fakeAgentProfileRepo{profiles: make(map[uuid.UUID]*entity.AgentProfile)}
}

func (f *fakeAgentProfileRepo) Create(_ context.Context, profile *entity.AgentProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeAgentProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AgentProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeAgentProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.AgentProfile, error) {
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, nil
}

func (f *fakeAgentProfileRepo) FindAll(_ context.Context) ([]*entity.AgentProfile, error) {
	all := make([]*entity.AgentProfile, 0, len(f.profiles))
	for _, profile := range f.profiles {
		all = append(all, profile)
	}
	return all, nil
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*entity.Property
	lastFilter repository.PropertyFilter
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[uuid.UUID]*entity.Property)}
}

func (f *fakePropertyRepo) Create(_ context.Context, property *entity.Property) error {
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) matches(property *entity.Property, filter repository.PropertyFilter) bool {
	if len(filter.Statuses) == 0 {
		return property.ModerationStatus == entity.ModerationApproved
	}
	for _, status := range filter.Statuses {
		if property.ModerationStatus == status {
			return true
		}
	}
	return false
}

func (f *fakePropertyRepo) FindAll(_ context.Context, filter repository.PropertyFilter, limit, offset int) ([]*entity.Property, error) {
	f.lastFilter = filter
	var matched []*entity.Property
	for _, property := range f.properties {
		if f.matches(property, filter) {
			matched = append(matched, property)
		}
	}
	if offset > len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakePropertyRepo) Count(_ context.Context, filter repository.PropertyFilter) (int64, error) {
	f.lastFilter = filter
	var count int64
	for _, property := range f.properties {
		if f.matches(property, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakePropertyRepo) FindByAgentProfileID(_ context.Context, agentProfileID uuid.UUID) ([]*entity.Property, error) {
	var matched []*entity.Property
	for _, property := range f.properties {
		if property.AgentProfileID == agentProfileID {
			matched = append(matched, property)
		}
	}
	return matched, nil
}

func (f *fakePropertyRepo) CountByAgentProfileID(_ context.Context, agentProfileID uuid.UUID) (int64, error) {
	matched, _ := f.FindByAgentProfileID(context.Background(), agentProfileID)
	return int64(len(matched)), nil
}

func (f *fakePropertyRepo) Update(_ context.Context, property *entity.Property) error {
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ModerationStatus) error {
	if property, ok := f.properties[id]; ok {
		property.ModerationStatus = status
	}
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.properties, id)
	return nil
}

type fakePasswordResetRepo struct {
	tokens map[uuid.UUID]*entity.PasswordResetToken
}

func newFakePasswordResetRepo() *fakePasswordResetRepo {
	return &fakePasswordResetRepo{tokens: make(map[uuid.UUID]*entity.PasswordResetToken)}
}

func (f *fakePasswordResetRepo) Create(_ context.Context, token *entity.PasswordResetToken) error {
	f.tokens[token.ID] = token
	return nil
}

func (f *fakePasswordResetRepo) FindValidByHash(_ context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	for _, token := range f.tokens {
		if token.TokenHash == tokenHash && token.UsedAt == nil && token.ExpiresAt.After(time.Now()) {
			return token, nil
		}
	}
	return nil, nil
}

func (f *fakePasswordResetRepo) MarkUsed(_ context.Context, id uuid.UUID) error {
	if token, ok := f.tokens[id]; ok && token.UsedAt == nil {
		now := time.Now()
		token.UsedAt = &now
	}
	return nil
}

var (
	_ repository.UserRepository          = (*fakeUserRepo)(nil)
	_ repository.AgentProfileRepository  = (*fakeAgentProfileRepo)(nil)
	_ repository.PropertyRepository      = (*fakePropertyRepo)(nil)
	_ repository.PasswordResetRepository = (*fakePasswordResetRepo)(nil)
)

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:          newFakeUserRepo(),
		AgentProfile:  newFakeAgentProfileRepo(),
		Property:      newFakePropertyRepo(),
		PasswordReset: newFakePasswordResetRepo(),
	}
}
