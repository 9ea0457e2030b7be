package usecase

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// CartUsecase は /carts の業務ロジック。
// 複数ステップの変更はすべて1トランザクションで行う。
type CartUsecase struct {
	tx repo.TransactionManager
}

func NewCartUsecase(tx repo.TransactionManager) *CartUsecase {
	return &CartUsecase{tx: tx}
}

type CartOutput struct {
	Cart  model.Cart       `json:"cart"`
	Items []model.CartItem `json:"items"`
}

type AddItemInput struct {
	UserID    int64
	ProductID int64
	Qty       int64
}

// カート取得（無ければactiveを作って空を返す）。
func (u *CartUsecase) GetActiveCart(ctx context.Context, userID int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	var out CartOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().GetOrCreateActiveByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CartOutput{Cart: cart, Items: items}
		return nil
	})

	if err != nil {
		return CartOutput{}, err
	}
	return out, nil
}

// カートに追加（同一商品は数量加算、価格は現在値で再スナップショット）。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (CartOutput, model.CartItem, error) {
	if in.UserID <= 0 {
		return CartOutput{}, model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.ProductID <= 0 {
		return CartOutput{}, model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Qty < 1 {
		return CartOutput{}, model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid qty")
	}

	var out CartOutput
	var added model.CartItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().GetOrCreateActiveByUserID(ctx, in.UserID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// sale_priceが正ならsale_price、そうでなければprice
		unitPrice := p.CurrentPrice().Round(2)

		item, err := r.CartItems().MergeAdd(ctx, cart.ID, p.ID, p.ShopID, in.Qty, unitPrice)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, items, err := u.recalculate(ctx, r, cart.ID)
		if err != nil {
			return err
		}

		out = CartOutput{Cart: cart, Items: items}
		added = item
		return nil
	})

	if err != nil {
		return CartOutput{}, model.CartItem{}, err
	}
	return out, added, nil
}

// 数量変更。qty=0は削除（これが正規の削除経路）。
func (u *CartUsecase) UpdateItemQty(ctx context.Context, cartItemID int64, qty int64) (CartOutput, error) {
	if cartItemID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if qty < 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid qty")
	}

	var out CartOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.CartItems().FindByID(ctx, cartItemID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if qty == 0 {
			if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else {
			//line_totalは保存済みのunit_priceから計算し直す
			lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(qty)).Round(2)
			if err := r.CartItems().UpdateQuantity(ctx, item.ID, qty, lineTotal); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		cart, items, err := u.recalculate(ctx, r, item.CartID)
		if err != nil {
			return err
		}

		out = CartOutput{Cart: cart, Items: items}
		return nil
	})

	if err != nil {
		return CartOutput{}, err
	}
	return out, nil
}

// 明細削除
func (u *CartUsecase) RemoveItem(ctx context.Context, cartItemID int64) (CartOutput, error) {
	if cartItemID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out CartOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.CartItems().FindByID(ctx, cartItemID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, items, err := u.recalculate(ctx, r, item.CartID)
		if err != nil {
			return err
		}

		out = CartOutput{Cart: cart, Items: items}
		return nil
	})

	if err != nil {
		return CartOutput{}, err
	}
	return out, nil
}

// activeカートの明細を全削除して集計をゼロに戻す。
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	var out CartOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindActiveByUserID(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Active cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().DeleteByCartID(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, items, err := u.recalculate(ctx, r, cart.ID)
		if err != nil {
			return err
		}

		out = CartOutput{Cart: cart, Items: items}
		return nil
	})

	if err != nil {
		return CartOutput{}, err
	}
	return out, nil
}

// recalculateはカート集計の唯一の書き手。
// total_items = Σqty、subtotal = round(Σline_total, 2)。
func (u *CartUsecase) recalculate(ctx context.Context, r repo.TxRepos, cartID int64) (model.Cart, []model.CartItem, error) {
	items, err := r.CartItems().ListByCartID(ctx, cartID)
	if err != nil {
		return model.Cart{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var totalItems int64 = 0
	subtotal := decimal.Zero

	for _, it := range items {
		totalItems += it.Qty
		subtotal = subtotal.Add(it.LineTotal)
	}
	subtotal = subtotal.Round(2)

	if err := r.Carts().UpdateTotals(ctx, cartID, totalItems, subtotal); err != nil {
		return model.Cart{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := r.Carts().FindByID(ctx, cartID)
	if err != nil {
		return model.Cart{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	cart.TotalItems = totalItems
	cart.Subtotal = subtotal

	return cart, items, nil
}
