package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, perPage int) ([]model.Order, int64, error)

	//order_number採番の衝突チェック用
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	UpdateStatus(ctx context.Context, orderID int64, status string) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error
}
