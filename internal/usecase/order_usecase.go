package usecase

import (
	"context"
	"crypto/rand"
	"math/big"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

const orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderUsecase はチェックアウトと注文照会。
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CheckoutInput struct {
	UserID          int64
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
	Zone            string
	District        string
	Area            string
	Lat             *float64
	Lon             *float64
	Note            string
}

type OrderOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

type OrderListOutput struct {
	Orders  []OrderOutput `json:"orders"`
	Count   int64         `json:"count"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// Checkout はactiveカートを注文に変換する。全工程が1トランザクション。
// 成功するとカートはchecked_outになり明細は空になる。
func (u *OrderUsecase) Checkout(ctx context.Context, in CheckoutInput) (OrderOutput, error) {
	if in.UserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindActiveByUserID(ctx, in.UserID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Active cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusConflict, "Cart is empty")
		}

		//金額はカートの保存値を信用せず明細から再計算する
		subtotal := decimal.Zero
		for _, ci := range cartItems {
			subtotal = subtotal.Add(ci.LineTotal)
		}
		subtotal = subtotal.Round(2)

		shippingFee := decimal.Zero
		discount := decimal.Zero
		total := subtotal.Add(shippingFee).Sub(discount).Round(2)

		orderNumber, err := u.issueOrderNumber(ctx, r)
		if err != nil {
			return err
		}

		order := model.Order{
			UserID:          in.UserID,
			OrderNumber:     orderNumber,
			Status:          model.OrderStatusPending,
			PaymentStatus:   model.PaymentStatusUnpaid,
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			ShippingAddress: in.ShippingAddress,
			Zone:            in.Zone,
			District:        in.District,
			Area:            in.Area,
			Lat:             in.Lat,
			Lon:             in.Lon,
			Subtotal:        subtotal,
			ShippingFee:     shippingFee,
			Discount:        discount,
			Total:           total,
			Note:            in.Note,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderItems := make([]model.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			//商品名とSKUは注文時点の値をコピーして固定する。
			//商品が既に消えていても注文は成立させる（価格はカートのスナップショット）。
			var productName, sku string
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == nil {
				productName = p.Name
				sku = p.SKU
			} else if err != repo.ErrNotFound {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderItems = append(orderItems, model.OrderItem{
				OrderID:     orderID,
				ProductID:   ci.ProductID,
				ShopID:      ci.ShopID,
				ProductName: productName,
				SKU:         sku,
				UnitPrice:   ci.UnitPrice,
				Qty:         ci.Qty,
				LineTotal:   ci.LineTotal,
				Status:      "pending",
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Carts().UpdateStatus(ctx, cart.ID, model.CartStatusCheckedOut); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.CartItems().DeleteByCartID(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Carts().UpdateTotals(ctx, cart.ID, 0, decimal.Zero); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//created_at/updated_atはDB保存時に入るので行を読み直す
		saved, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{Order: saved, Items: created}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListOrders はユーザーの注文履歴（新しい順・ページング付き）。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int64, page int, perPage int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, count, err := r.Orders().ListByUserID(ctx, userID, page, perPage)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		list := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			list = append(list, OrderOutput{Order: o, Items: items})
		}

		out = OrderListOutput{Orders: list, Count: count, Page: page, PerPage: perPage}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetOrderDetails(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
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

// ORD-YYYYMMDD-XXXXXX。衝突したら引き直す（最大3回）。
func (u *OrderUsecase) issueOrderNumber(ctx context.Context, r repo.TxRepos) (string, error) {
	for i := 0; i < 3; i++ {
		num, err := newOrderNumber(time.Now())
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "order number generation failed")
		}

		exists, err := r.Orders().ExistsByOrderNumber(ctx, num)
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !exists {
			return num, nil
		}
	}
	return "", NewHTTPError(http.StatusInternalServerError, "order number generation failed")
}

func newOrderNumber(now time.Time) (string, error) {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(orderNumberCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = orderNumberCharset[n.Int64()]
	}
	return "ORD-" + now.Format("20060102") + "-" + string(suffix), nil
}
