package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type ApiTokenGormRepository struct {
	db *gorm.DB
}

// GORM実装
func NewApiTokenGormRepository(db *gorm.DB) *ApiTokenGormRepository {
	return &ApiTokenGormRepository{db: db}
}

func (r *ApiTokenGormRepository) Create(ctx context.Context, token *model.ApiToken) error {
	err := r.db.WithContext(ctx).Create(token).Error
	if isUniqueViolation(err) {
		//digest衝突。呼び出し側で引き直す
		return repo.ErrDuplicate
	}
	return err
}

// digest一致・未失効・未期限切れの行を1件検索する。
// token_hashにはuniqueIndexがあるので毎リクエストの検索でも重くならない。
func (r *ApiTokenGormRepository) FindUsableByHash(ctx context.Context, tokenHash string, now time.Time) (model.ApiToken, error) {
	var token model.ApiToken

	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND is_revoked = ?", tokenHash, false).
		Where("expires_at IS NULL OR expires_at > ?", now).
		First(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ApiToken{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ApiToken{}, err
	}
	return token, nil
}

func (r *ApiTokenGormRepository) FindByID(ctx context.Context, tokenID int64) (model.ApiToken, error) {
	var token model.ApiToken

	err := r.db.WithContext(ctx).
		Where("id = ?", tokenID).
		First(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ApiToken{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ApiToken{}, err
	}
	return token, nil
}

func (r *ApiTokenGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.ApiToken, error) {
	var tokens []model.ApiToken

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&tokens).Error; err != nil {
		return []model.ApiToken{}, err
	}
	return tokens, nil
}

// is_revokedを立てて失効。行は消さない。
func (r *ApiTokenGormRepository) Revoke(ctx context.Context, tokenID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.ApiToken{}).
		Where("id = ?", tokenID).
		Update("is_revoked", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 認証成功の副作用（last_used_at / source_ip）を記録する。
func (r *ApiTokenGormRepository) Touch(ctx context.Context, tokenID int64, usedAt time.Time, sourceIP string) error {
	res := r.db.WithContext(ctx).
		Model(&model.ApiToken{}).
		Where("id = ?", tokenID).
		Updates(map[string]interface{}{
			"last_used_at": usedAt,
			"source_ip":    sourceIP,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
