package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type AssignmentGormRepository struct {
	db *gorm.DB
}

// DI
func NewAssignmentGormRepository(db *gorm.DB) *AssignmentGormRepository {
	return &AssignmentGormRepository{db: db}
}

func (r *AssignmentGormRepository) Create(ctx context.Context, a *model.AssignDeliveryMan) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// 最新のassigned行を取得。担当者指定があれば絞り込む。
func (r *AssignmentGormRepository) FindAssignedByOrderID(ctx context.Context, orderID int64, deliveryManID *int64) (model.AssignDeliveryMan, error) {
	var a model.AssignDeliveryMan

	q := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, model.AssignmentStatusAssigned)

	if deliveryManID != nil {
		q = q.Where("delivery_man_id = ?", *deliveryManID)
	}

	err := q.Order("id desc").First(&a).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AssignDeliveryMan{}, repo.ErrNotFound
	}
	if err != nil {
		return model.AssignDeliveryMan{}, err
	}
	return a, nil
}

func (r *AssignmentGormRepository) Update(ctx context.Context, a *model.AssignDeliveryMan) error {
	res := r.db.WithContext(ctx).Save(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
