package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

func TestRevokeToken_OwnerOnly(t *testing.T) {
	tokens := new(MockApiTokenRepository)
	uc := NewTokenAdminUsecase(tokens)

	tokens.On("FindByID", mock.Anything, int64(10)).Return(model.ApiToken{ID: 10, UserID: 7}, nil)

	err := uc.RevokeToken(context.Background(), 10, 99)

	assert.ErrorIs(t, err, ErrNotTokenOwner)
	tokens.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestRevokeToken_Owner(t *testing.T) {
	tokens := new(MockApiTokenRepository)
	uc := NewTokenAdminUsecase(tokens)

	tokens.On("FindByID", mock.Anything, int64(10)).Return(model.ApiToken{ID: 10, UserID: 7}, nil)
	tokens.On("Revoke", mock.Anything, int64(10)).Return(nil)

	err := uc.RevokeToken(context.Background(), 10, 7)

	assert.NoError(t, err)
	tokens.AssertExpectations(t)
}

func TestRevokeToken_NotFound(t *testing.T) {
	tokens := new(MockApiTokenRepository)
	uc := NewTokenAdminUsecase(tokens)

	tokens.On("FindByID", mock.Anything, int64(404)).Return(model.ApiToken{}, repo.ErrNotFound)

	err := uc.RevokeToken(context.Background(), 404, 7)

	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestLogout_RevokesPresentedToken(t *testing.T) {
	tokens := new(MockApiTokenRepository)
	uc := NewTokenAdminUsecase(tokens)

	tokens.On("Revoke", mock.Anything, int64(10)).Return(nil)

	err := uc.Logout(context.Background(), 10)

	assert.NoError(t, err)
	tokens.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewRegisterUserUsecase(users, NewBcryptPasswordHasher(4))

	users.On("FindByEmail", mock.Anything, "a@example.com").Return(model.User{ID: 1}, nil)

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Taro",
		Email:    "a@example.com",
		Password: "pw12345678",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_DefaultsToCustomerAndHashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewRegisterUserUsecase(users, NewBcryptPasswordHasher(4))

	users.On("FindByEmail", mock.Anything, "a@example.com").Return(model.User{}, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleCustomer &&
			u.PasswordHash != "" &&
			u.PasswordHash != "pw12345678"
	})).Return(nil)

	out, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Taro",
		Email:    "a@example.com",
		Password: "pw12345678",
	})

	assert.NoError(t, err)
	assert.True(t, NewBcryptPasswordVerifier().Verify("pw12345678", out.User.PasswordHash))
	users.AssertExpectations(t)
}

func TestRegisterUser_RejectsWeakPassword(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewRegisterUserUsecase(users, NewBcryptPasswordHasher(4))

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Taro",
		Email:    "a@example.com",
		Password: "12345678",
	})

	assert.ErrorIs(t, err, ErrWeakPassword)
}
