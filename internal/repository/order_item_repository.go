package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	FindByID(ctx context.Context, itemID int64) (model.OrderItem, error)

	UpdateStatus(ctx context.Context, itemID int64, status string) error
	UpdateStatusByOrderID(ctx context.Context, orderID int64, status string) error

	//settle用
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.OrderItem, error)
	MarkSettled(ctx context.Context, ids []int64) error
}
