package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketplace/internal/usecase"
	"marketplace/internal/validator"
)

// /ordersのHTTP
type OrderHandler struct {
	uc     *usecase.OrderUsecase
	status *usecase.OrderStatusUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, status *usecase.OrderStatusUsecase) *OrderHandler {
	return &OrderHandler{uc: uc, status: status}
}

type CheckoutRequest struct {
	UserID          int64    `json:"user_id"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone"`
	ShippingAddress string   `json:"shipping_address"`
	Zone            string   `json:"zone"`
	District        string   `json:"district"`
	Area            string   `json:"area"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
	Note            string   `json:"note"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders/checkout", h.postCheckout)
	g.GET("/orders/list/:userId", h.getList)
	g.GET("/orders/details/:id", h.getDetails)
	g.PATCH("/orders/status/:id", h.patchStatus)
	g.PATCH("/orders/item/status/:id", h.patchItemStatus)
}

func (h *OrderHandler) postCheckout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateCheckout(req.UserID, req.CustomerName, req.CustomerPhone); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Zone:            req.Zone,
		District:        req.District,
		Area:            req.Area,
		Lat:             req.Lat,
		Lon:             req.Lon,
		Note:            req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusCreated, "Order placed", out)
}

func (h *OrderHandler) getList(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid user id", nil)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	out, err := h.uc.ListOrders(c.Request().Context(), userID, page, perPage)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Orders retrieved", out)
}

func (h *OrderHandler) getDetails(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid order id", nil)
	}

	out, err := h.uc.GetOrderDetails(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Order details", out)
}

func (h *OrderHandler) patchStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid order id", nil)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateOrderStatus(req.Status); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.status.SetOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Order status updated", out)
}

func (h *OrderHandler) patchItemStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid order item id", nil)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateOrderStatus(req.Status); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.status.SetOrderItemStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Order item status updated", out)
}
