package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

// DI
func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) Create(ctx context.Context, trx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(trx).Error
}

func (r *TransactionGormRepository) filtered(ctx context.Context, f repo.TransactionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Transaction{})

	if f.TrxType != "" {
		q = q.Where("trx_type = ?", f.TrxType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	return q
}

func (r *TransactionGormRepository) List(ctx context.Context, f repo.TransactionFilter) ([]model.Transaction, int64, error) {
	var trxs []model.Transaction
	var total int64

	q := r.filtered(ctx, f)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage < 1 {
		perPage = 20
	}

	if err := q.
		Order("id desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&trxs).Error; err != nil {
		return nil, 0, err
	}

	return trxs, total, nil
}

// 条件に合う台帳のamount合計。該当なしは0。
func (r *TransactionGormRepository) SumAmount(ctx context.Context, f repo.TransactionFilter) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := r.filtered(ctx, f).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error

	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
