package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
)

type CartRepository interface {
	//activeカートを取得し、無ければ作る（同時アクセスでも2つ作らない）
	GetOrCreateActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)

	FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)

	UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error

	//集計の書き込みはここだけ
	UpdateTotals(ctx context.Context, cartID int64, totalItems int64, subtotal decimal.Decimal) error
}
