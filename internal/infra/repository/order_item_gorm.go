package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].OrderID = orderID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

func (r *OrderItemGormRepository) FindByID(ctx context.Context, itemID int64) (model.OrderItem, error) {
	var item model.OrderItem

	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderItem{}, err
	}
	return item, nil
}

func (r *OrderItemGormRepository) UpdateStatus(ctx context.Context, itemID int64, status string) error {
	res := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("id = ?", itemID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文完了時のカスケード用
func (r *OrderItemGormRepository) UpdateStatusByOrderID(ctx context.Context, orderID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}

func (r *OrderItemGormRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("id IN ?", ids).
		Count(&count).Error

	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderItemGormRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

func (r *OrderItemGormRepository) MarkSettled(ctx context.Context, ids []int64) error {
	return r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Where("id IN ?", ids).
		Update("is_settle_with_seller", true).Error
}
