package auth

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

var (
	ErrTokenNotFound = errors.New("token not found")

	// 他人のトークンには触れない
	ErrNotTokenOwner = errors.New("not token owner")
)

// TokenAdminUsecaseは発行済みトークンの棚卸しと失効。
type TokenAdminUsecase struct {
	tokenRepo repo.ApiTokenRepository
}

func NewTokenAdminUsecase(tokenRepo repo.ApiTokenRepository) *TokenAdminUsecase {
	return &TokenAdminUsecase{tokenRepo: tokenRepo}
}

// Logoutは今使っているトークンを失効させる。行は監査のため残る。
func (u *TokenAdminUsecase) Logout(ctx context.Context, tokenID int64) error {
	err := u.tokenRepo.Revoke(ctx, tokenID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}

// 自分の全トークン一覧（失効済み・期限切れも含む）
func (u *TokenAdminUsecase) ListTokens(ctx context.Context, userID int64) ([]model.ApiToken, error) {
	return u.tokenRepo.ListByUserID(ctx, userID)
}

// 任意のトークンを失効。所有者本人だけ。
func (u *TokenAdminUsecase) RevokeToken(ctx context.Context, tokenID int64, requesterID int64) error {
	token, err := u.tokenRepo.FindByID(ctx, tokenID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTokenNotFound
	}
	if err != nil {
		return err
	}

	if token.UserID != requesterID {
		return ErrNotTokenOwner
	}

	return u.tokenRepo.Revoke(ctx, tokenID)
}
