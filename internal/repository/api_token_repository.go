package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
)

// APIトークンの保存・検索・失効。
// 削除はしない（is_revokedで失効、監査のため行は残す）。
type ApiTokenRepository interface {
	Create(ctx context.Context, token *model.ApiToken) error

	//digest一致かつ未失効・未期限切れの1件。無ければErrNotFound
	FindUsableByHash(ctx context.Context, tokenHash string, now time.Time) (model.ApiToken, error)

	FindByID(ctx context.Context, tokenID int64) (model.ApiToken, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.ApiToken, error)

	//is_revoked=trueにする
	Revoke(ctx context.Context, tokenID int64) error

	//認証成功のたびにlast_used_atとsource_ipを更新する
	Touch(ctx context.Context, tokenID int64, usedAt time.Time, sourceIP string) error
}
