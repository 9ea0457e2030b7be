package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/usecase"
	"marketplace/internal/validator"
)

// /deliveriesのHTTP
type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

// DI
func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

type AssignDeliveryRequest struct {
	DeliveryManID int64   `json:"delivery_man_id"`
	OrderID       int64   `json:"order_id"`
	Note          *string `json:"note"`
}

type UnassignDeliveryRequest struct {
	OrderID       int64   `json:"order_id"`
	DeliveryManID *int64  `json:"delivery_man_id"`
	Note          *string `json:"note"`
}

func (h *DeliveryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/deliveries/assign", h.postAssign)
	g.POST("/deliveries/unassign", h.postUnassign)
}

func (h *DeliveryHandler) postAssign(c echo.Context) error {
	var req AssignDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateAssignDelivery(req.DeliveryManID, req.OrderID); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.Assign(c.Request().Context(), usecase.AssignInput{
		DeliveryManID: req.DeliveryManID,
		OrderID:       req.OrderID,
		Note:          req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Delivery man assigned", out)
}

func (h *DeliveryHandler) postUnassign(c echo.Context) error {
	var req UnassignDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateUnassignDelivery(req.OrderID); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.Unassign(c.Request().Context(), usecase.UnassignInput{
		OrderID:       req.OrderID,
		DeliveryManID: req.DeliveryManID,
		Note:          req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Delivery man unassigned", out)
}
