package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"marketplace/internal/usecase"
)

// /productsのHTTP（カートが参照する最小限）
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type CreateProductRequest struct {
	ShopID      int64           `json:"shop_id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/products/create", h.postCreate)
	g.GET("/products/details/:id", h.getDetails)
}

func (h *ProductHandler) postCreate(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		ShopID:      req.ShopID,
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusCreated, "Product created", out)
}

func (h *ProductHandler) getDetails(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid product id", nil)
	}

	out, err := h.uc.GetProductDetails(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Product details", out)
}
