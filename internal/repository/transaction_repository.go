package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
)

// 台帳の絞り込み条件。
type TransactionFilter struct {
	TrxType model.TrxType
	Status  string
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// 追記のみ。UpdateやDeleteは提供しない。
type TransactionRepository interface {
	Create(ctx context.Context, trx *model.Transaction) error
	List(ctx context.Context, f TransactionFilter) ([]model.Transaction, int64, error)
	SumAmount(ctx context.Context, f TransactionFilter) (decimal.Decimal, error)
}
