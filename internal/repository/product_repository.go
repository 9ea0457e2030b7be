package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	//一意制約違反（email重複など）
	ErrDuplicate = errors.New("duplicate")
)

// 商品の永続化（保存・取得）だけを約束。
// カタログ検索などはこのコアの範囲外。
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
