package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketplace/internal/usecase"
	"marketplace/internal/validator"
)

// /cartsのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

type UpdateCartItemRequest struct {
	Qty int64 `json:"qty"`
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/carts/active/:userId", h.getActive)
	g.POST("/carts/items/add", h.postAddItem)
	g.PUT("/carts/items/update/:itemId", h.putUpdateItem)
	g.DELETE("/carts/items/delete/:itemId", h.deleteItem)
	g.DELETE("/carts/clear/:userId", h.deleteClear)
}

func (h *CartHandler) getActive(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid user id", nil)
	}

	out, err := h.uc.GetActiveCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Active cart", out)
}

func (h *CartHandler) postAddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateAddCartItem(req.UserID, req.ProductID, req.Qty); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, item, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Qty:       req.Qty,
	})
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Item added to cart", map[string]interface{}{
		"cart":  out.Cart,
		"items": out.Items,
		"item":  item,
	})
}

func (h *CartHandler) putUpdateItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid item id", nil)
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateUpdateCartItemQty(req.Qty); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.UpdateItemQty(c.Request().Context(), itemID, req.Qty)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Cart item updated", out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid item id", nil)
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), itemID)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Cart item removed", out)
}

func (h *CartHandler) deleteClear(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid user id", nil)
	}

	out, err := h.uc.ClearCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Cart cleared", out)
}
