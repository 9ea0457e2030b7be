package usecase

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

const ledgerDateLayout = "2006-01-02"

// TransactionUsecase は取引台帳の照会と出金（精算）。
// strictAmountがtrueのとき、精算額と明細合計の一致を要求する。
type TransactionUsecase struct {
	tx           repo.TransactionManager
	strictAmount bool
}

func NewTransactionUsecase(tx repo.TransactionManager, strictAmount bool) *TransactionUsecase {
	return &TransactionUsecase{tx: tx, strictAmount: strictAmount}
}

type LedgerQuery struct {
	StartDate string
	EndDate   string
	Page      int
	PerPage   int
}

type LedgerOutput struct {
	Total   decimal.Decimal     `json:"total"`
	Items   []model.Transaction `json:"items"`
	Count   int64               `json:"count"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
}

type ReportOutput struct {
	TotalCredit   decimal.Decimal `json:"total_credit"`
	TotalDebit    decimal.Decimal `json:"total_debit"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

type SettleInput struct {
	VendorID     int64
	Amount       decimal.Decimal
	OrderItemIDs []int64
	OrderID      *int64
	TrxID        string
	Source       string
	Note         string
}

func (u *TransactionUsecase) ListCredit(ctx context.Context, q LedgerQuery) (LedgerOutput, error) {
	return u.list(ctx, model.TrxTypeCredit, q)
}

func (u *TransactionUsecase) ListDebit(ctx context.Context, q LedgerQuery) (LedgerOutput, error) {
	return u.list(ctx, model.TrxTypeDebit, q)
}

// Report はcredit/debitの集計と粗利。margin = profit / credit * 100。
func (u *TransactionUsecase) Report(ctx context.Context, q LedgerQuery) (ReportOutput, error) {
	from, to, err := parseLedgerRange(q)
	if err != nil {
		return ReportOutput{}, err
	}

	var out ReportOutput

	txErr := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		credit, err := r.Transactions().SumAmount(ctx, repo.TransactionFilter{
			TrxType: model.TrxTypeCredit, Status: "completed", From: from, To: to,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		debit, err := r.Transactions().SumAmount(ctx, repo.TransactionFilter{
			TrxType: model.TrxTypeDebit, Status: "completed", From: from, To: to,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		profit := credit.Sub(debit).Round(2)

		margin := decimal.Zero
		if credit.IsPositive() {
			margin = profit.Div(credit).Mul(decimal.NewFromInt(100)).Round(2)
		}

		out = ReportOutput{
			TotalCredit:   credit.Round(2),
			TotalDebit:    debit.Round(2),
			Profit:        profit,
			MarginPercent: margin,
		}
		return nil
	})

	if txErr != nil {
		return ReportOutput{}, txErr
	}
	return out, nil
}

// Settle は出品者への支払いをdebitとして記帳し、対象明細を精算済みにする。
func (u *TransactionUsecase) Settle(ctx context.Context, in SettleInput) (model.Transaction, error) {
	if in.VendorID <= 0 {
		return model.Transaction{}, NewHTTPError(http.StatusUnprocessableEntity, "invalid vendor_id")
	}
	if !in.Amount.IsPositive() {
		return model.Transaction{}, NewHTTPError(http.StatusUnprocessableEntity, "invalid amount")
	}
	if len(in.OrderItemIDs) == 0 {
		return model.Transaction{}, NewHTTPError(http.StatusUnprocessableEntity, "order_item_ids is required")
	}

	var out model.Transaction

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		count, err := r.OrderItems().CountByIDs(ctx, in.OrderItemIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if count != int64(len(in.OrderItemIDs)) {
			return NewHTTPError(http.StatusNotFound, "One or more order items not found")
		}

		if u.strictAmount {
			items, err := r.OrderItems().ListByIDs(ctx, in.OrderItemIDs)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			sum := decimal.Zero
			for _, it := range items {
				sum = sum.Add(it.LineTotal)
			}
			if !sum.Round(2).Equal(in.Amount.Round(2)) {
				return NewHTTPError(http.StatusUnprocessableEntity, "Settlement amount does not match order items total")
			}
		}

		trxID := in.TrxID
		if trxID == "" {
			trxID = uuid.NewString()
		}
		source := in.Source
		if source == "" {
			source = model.TrxSourceSettlement
		}

		trx := model.Transaction{
			Amount:  in.Amount.Round(2),
			RefID:   strconv.FormatInt(in.VendorID, 10),
			TrxID:   trxID,
			TrxType: model.TrxTypeDebit,
			Status:  "completed",
			Source:  source,
			OrderID: in.OrderID,
			Type:    "settlement",
			Note:    in.Note,
		}
		if err := r.Transactions().Create(ctx, &trx); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().MarkSettled(ctx, in.OrderItemIDs); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = trx
		return nil
	})

	if err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

func (u *TransactionUsecase) list(ctx context.Context, trxType model.TrxType, q LedgerQuery) (LedgerOutput, error) {
	from, to, err := parseLedgerRange(q)
	if err != nil {
		return LedgerOutput{}, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	f := repo.TransactionFilter{
		TrxType: trxType,
		Status:  "completed",
		From:    from,
		To:      to,
		Page:    page,
		PerPage: perPage,
	}

	var out LedgerOutput

	txErr := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, count, err := r.Transactions().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		total, err := r.Transactions().SumAmount(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = LedgerOutput{
			Total:   total.Round(2),
			Items:   items,
			Count:   count,
			Page:    page,
			PerPage: perPage,
		}
		return nil
	})

	if txErr != nil {
		return LedgerOutput{}, txErr
	}
	return out, nil
}

// start_dateはその日の0時、end_dateはその日の終わりまで含める。
func parseLedgerRange(q LedgerQuery) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if q.StartDate != "" {
		t, err := time.Parse(ledgerDateLayout, q.StartDate)
		if err != nil {
			return nil, nil, NewHTTPError(http.StatusUnprocessableEntity, "invalid start_date")
		}
		from = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(ledgerDateLayout, q.EndDate)
		if err != nil {
			return nil, nil, NewHTTPError(http.StatusUnprocessableEntity, "invalid end_date")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	return from, to, nil
}
