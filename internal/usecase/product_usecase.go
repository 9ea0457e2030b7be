package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 商品はカートエンジンの協力者。
// ここではカートが必要とする最小限（登録と取得）だけを持つ。
type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type CreateProductInput struct {
	ShopID      int64
	Name        string
	SKU         string
	Description string
	Price       decimal.Decimal
	SalePrice   decimal.Decimal
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 255 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price.IsNegative() || in.SalePrice.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	p := model.Product{
		ShopID:      in.ShopID,
		Name:        name,
		SKU:         strings.TrimSpace(in.SKU),
		Description: in.Description,
		Price:       in.Price.Round(2),
		SalePrice:   in.SalePrice.Round(2),
		IsActive:    true,
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) GetProductDetails(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
