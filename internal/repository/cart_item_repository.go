package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)

	// 同一商品は数量加算し、unit_price/line_totalは現在価格で取り直す。
	// 行ロックを取ってからマージする。
	MergeAdd(ctx context.Context, cartID int64, productID int64, shopID int64, addQty int64, unitPrice decimal.Decimal) (model.CartItem, error)

	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64, lineTotal decimal.Decimal) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	DeleteByCartID(ctx context.Context, cartID int64) error
}
