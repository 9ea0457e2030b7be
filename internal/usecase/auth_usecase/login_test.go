package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (model.User, error) {
	args := m.Called(ctx, phone)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// =====================
// Mock: ApiTokenRepository
// =====================

type MockApiTokenRepository struct {
	mock.Mock
}

func (m *MockApiTokenRepository) Create(ctx context.Context, token *model.ApiToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockApiTokenRepository) FindUsableByHash(ctx context.Context, tokenHash string, now time.Time) (model.ApiToken, error) {
	args := m.Called(ctx, tokenHash, now)
	t, _ := args.Get(0).(model.ApiToken)
	return t, args.Error(1)
}

func (m *MockApiTokenRepository) FindByID(ctx context.Context, tokenID int64) (model.ApiToken, error) {
	args := m.Called(ctx, tokenID)
	t, _ := args.Get(0).(model.ApiToken)
	return t, args.Error(1)
}

func (m *MockApiTokenRepository) ListByUserID(ctx context.Context, userID int64) ([]model.ApiToken, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]model.ApiToken)
	return list, args.Error(1)
}

func (m *MockApiTokenRepository) Revoke(ctx context.Context, tokenID int64) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockApiTokenRepository) Touch(ctx context.Context, tokenID int64, usedAt time.Time, sourceIP string) error {
	args := m.Called(ctx, tokenID, usedAt, sourceIP)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func hashOf(plain string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	return string(b)
}

func newLoginUsecase(users *MockUserRepository, tokens *MockApiTokenRepository, now time.Time) *LoginUsecase {
	clock := fixedClock{now: now}
	svc := NewTokenService(tokens, clock)
	return NewLoginUsecase(users, svc, NewBcryptPasswordVerifier(), clock)
}

func TestLogin_InvalidPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, time.Now())

	user := model.User{ID: 7, Email: "a@example.com", PasswordHash: hashOf("correct-password")}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, time.Now())

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_BannedUser(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, time.Now())

	user := model.User{ID: 7, Email: "a@example.com", PasswordHash: hashOf("pw12345678"), IsBanned: true}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "pw12345678"})

	assert.ErrorIs(t, err, ErrUserBanned)
}

func TestLogin_RejectsOutOfRangeTTL(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, time.Now())

	user := model.User{ID: 7, Email: "a@example.com", PasswordHash: hashOf("pw12345678")}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)

	for _, ttl := range []int{-1, 3651} {
		_, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "pw12345678", ExpiresInDays: ttl})
		assert.ErrorIs(t, err, ErrInvalidTokenTTL)
	}
	tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_EmailTakesPrecedenceOverPhone(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, time.Now())

	user := model.User{ID: 7, Email: "a@example.com", PasswordHash: hashOf("pw12345678")}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)
	tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Phone: "0900000000", Password: "pw12345678"})

	assert.NoError(t, err)
	users.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
}

func TestLogin_IssuesTokenWithDefaultsAndScopes(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, now)

	user := model.User{ID: 7, Email: "a@example.com", PasswordHash: hashOf("pw12345678"), Role: model.RoleCustomer}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)

	var saved *model.ApiToken
	tokens.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.ApiToken) bool {
		saved = tok
		return tok.UserID == 7 &&
			tok.Name == "login-token" &&
			len(tok.Scopes) == 1 && tok.Scopes[0] == model.ScopeBasic &&
			tok.ExpiresAt != nil && tok.ExpiresAt.Equal(now.AddDate(0, 0, 30))
	})).Return(nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.LastLoginAt != nil
	})).Return(nil)

	out, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "pw12345678"})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	//平文は64文字の英数字、DBに入るのはsha256ダイジェスト
	assert.Len(t, out.Token, 64)
	assert.Regexp(t, `^[A-Za-z0-9]{64}$`, out.Token)
	assert.Equal(t, HashToken(out.Token), saved.TokenHash)
	assert.NotEqual(t, out.Token, saved.TokenHash)
	tokens.AssertExpectations(t)
}

func TestLogin_AdminGetsAdminScope(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, time.Now())

	user := model.User{ID: 1, Email: "root@example.com", PasswordHash: hashOf("pw12345678"), Role: model.RoleAdmin}
	users.On("FindByEmail", mock.Anything, "root@example.com").Return(user, nil)
	tokens.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.ApiToken) bool {
		return len(tok.Scopes) == 2 && tok.Scopes[0] == model.ScopeBasic && tok.Scopes[1] == model.ScopeAdmin
	})).Return(nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "root@example.com", Password: "pw12345678"})

	assert.NoError(t, err)
	tokens.AssertExpectations(t)
}

func TestLogin_CustomTTLAndName(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	users := new(MockUserRepository)
	tokens := new(MockApiTokenRepository)
	uc := newLoginUsecase(users, tokens, now)

	user := model.User{ID: 7, Email: "a@example.com", PasswordHash: hashOf("pw12345678")}
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(user, nil)
	tokens.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.ApiToken) bool {
		return tok.Name == "ci-token" && tok.ExpiresAt.Equal(now.AddDate(0, 0, 90))
	})).Return(nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), LoginInput{
		Email:         "a@example.com",
		Password:      "pw12345678",
		TokenName:     "ci-token",
		ExpiresInDays: 90,
	})

	assert.NoError(t, err)
	tokens.AssertExpectations(t)
}

func TestHashToken_Deterministic(t *testing.T) {
	a := HashToken("some-plain-token")
	b := HashToken("some-plain-token")
	c := HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // sha256 hex
}
