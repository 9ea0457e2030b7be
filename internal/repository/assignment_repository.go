package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a *model.AssignDeliveryMan) error

	//最新のassigned行。deliveryManIDを渡すとその担当者で絞る
	FindAssignedByOrderID(ctx context.Context, orderID int64, deliveryManID *int64) (model.AssignDeliveryMan, error)

	Update(ctx context.Context, a *model.AssignDeliveryMan) error
}
