package usecase

import (
	"context"
	"net/http"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// DeliveryUsecase は配達員のアサイン・解除。
type DeliveryUsecase struct {
	tx repo.TransactionManager
}

func NewDeliveryUsecase(tx repo.TransactionManager) *DeliveryUsecase {
	return &DeliveryUsecase{tx: tx}
}

type AssignInput struct {
	DeliveryManID int64
	OrderID       int64
	Note          *string
}

type UnassignInput struct {
	OrderID       int64
	DeliveryManID *int64
	Note          *string
}

// Assign は注文に配達員を割り当てる。
// 同一配達員の再アサインは冪等、別の配達員なら既存行を上書きする。
func (u *DeliveryUsecase) Assign(ctx context.Context, in AssignInput) (model.AssignDeliveryMan, error) {
	if in.OrderID <= 0 || in.DeliveryManID <= 0 {
		return model.AssignDeliveryMan{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out model.AssignDeliveryMan

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		dm, err := r.Users().FindByID(ctx, in.DeliveryManID)
		if err == repo.ErrNotFound || (err == nil && dm.Role != model.RoleDeliveryBoy) {
			return NewHTTPError(http.StatusUnprocessableEntity, "User is not a delivery man")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.Orders().FindByID(ctx, in.OrderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "Order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		existing, err := r.Assignments().FindAssignedByOrderID(ctx, in.OrderID, nil)
		switch {
		case err == nil:
			//既にアサイン済み。同一人物なら何もしない
			if existing.DeliveryManID == in.DeliveryManID {
				out = existing
				return nil
			}
			existing.DeliveryManID = in.DeliveryManID
			if in.Note != nil {
				existing.Note = *in.Note
			}
			if err := r.Assignments().Update(ctx, &existing); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = existing
			return nil

		case err == repo.ErrNotFound:
			a := model.AssignDeliveryMan{
				DeliveryManID: in.DeliveryManID,
				OrderID:       in.OrderID,
				Status:        model.AssignmentStatusAssigned,
			}
			if in.Note != nil {
				a.Note = *in.Note
			}
			if err := r.Assignments().Create(ctx, &a); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			//初回アサイン時だけ注文ステータスも進める
			if err := r.Orders().UpdateStatus(ctx, in.OrderID, model.OrderStatusAssignedDeliveryer); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = a
			return nil

		default:
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	})

	if err != nil {
		return model.AssignDeliveryMan{}, err
	}
	return out, nil
}

// Unassign はアサインを解除する。行は消さずstatusをunassignedにする。
func (u *DeliveryUsecase) Unassign(ctx context.Context, in UnassignInput) (model.AssignDeliveryMan, error) {
	if in.OrderID <= 0 {
		return model.AssignDeliveryMan{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out model.AssignDeliveryMan

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		a, err := r.Assignments().FindAssignedByOrderID(ctx, in.OrderID, in.DeliveryManID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Assigned delivery man not found for this order")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		a.Status = model.AssignmentStatusUnassigned
		if in.Note != nil {
			a.Note = *in.Note
		}
		if err := r.Assignments().Update(ctx, &a); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = a
		return nil
	})

	if err != nil {
		return model.AssignDeliveryMan{}, err
	}
	return out, nil
}
