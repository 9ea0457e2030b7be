package usecase

import (
	"context"
	"net/http"
	"strings"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// OrderStatusUsecase は注文・明細のステータス遷移。
// completedだけが終端で、それ以外の遷移は自由に許す。
type OrderStatusUsecase struct {
	tx repo.TransactionManager
}

func NewOrderStatusUsecase(tx repo.TransactionManager) *OrderStatusUsecase {
	return &OrderStatusUsecase{tx: tx}
}

// SetOrderStatus は注文ステータスを更新する。
// completedへの遷移では支払済みマーク・明細の一括更新・入金取引の記帳まで行う。
func (u *OrderStatusUsecase) SetOrderStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	status = strings.TrimSpace(status)
	if status == "" || len(status) > 50 {
		return OrderOutput{}, NewHTTPError(http.StatusUnprocessableEntity, "invalid status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//completedは終端。再completedも含めて一切の更新を拒む
		if order.Status == model.OrderStatusCompleted {
			return NewHTTPError(http.StatusBadRequest, "Order is already completed and cannot be updated")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, status); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		order.Status = status

		if status == model.OrderStatusCompleted {
			if err := r.Orders().UpdatePaymentStatus(ctx, orderID, model.PaymentStatusPaid); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			order.PaymentStatus = model.PaymentStatusPaid

			if err := r.OrderItems().UpdateStatusByOrderID(ctx, orderID, model.OrderStatusCompleted); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//代引き入金をcreditとして記帳
			oid := order.ID
			trx := model.Transaction{
				Amount:  order.Total,
				TrxType: model.TrxTypeCredit,
				Status:  "completed",
				Source:  model.TrxSourceCOD,
				OrderID: &oid,
				Type:    "order_payment",
				Note:    "Payment received for order #" + order.OrderNumber,
			}
			if err := r.Transactions().Create(ctx, &trx); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{Order: order, Items: items}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 明細単位のステータス更新。親注文の状態には触らない。
func (u *OrderStatusUsecase) SetOrderItemStatus(ctx context.Context, itemID int64, status string) (model.OrderItem, error) {
	if itemID <= 0 {
		return model.OrderItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	status = strings.TrimSpace(status)
	if status == "" || len(status) > 50 {
		return model.OrderItem{}, NewHTTPError(http.StatusUnprocessableEntity, "invalid status")
	}

	var out model.OrderItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.OrderItems().FindByID(ctx, itemID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order item not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().UpdateStatus(ctx, itemID, status); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		item.Status = status

		out = item
		return nil
	})

	if err != nil {
		return model.OrderItem{}, err
	}
	return out, nil
}
