package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"marketplace/internal/usecase"
	"marketplace/internal/validator"
)

// /transactionsのHTTP。adminスコープ必須（ルート登録側でScopeGuardを挟む）。
type TransactionHandler struct {
	uc *usecase.TransactionUsecase
}

// DI
func NewTransactionHandler(uc *usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

type SettleRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	OrderItemIDs []int64         `json:"order_item_ids"`
	OrderID      *int64          `json:"order_id"`
	TrxID        string          `json:"trx_id"`
	Source       string          `json:"source"`
	Note         string          `json:"note"`
}

func (h *TransactionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/transactions/credit", h.getCredit)
	g.GET("/transactions/debit", h.getDebit)
	g.GET("/transactions/report", h.getReport)
	g.POST("/transactions/settle/:vendorId", h.postSettle)
}

func (h *TransactionHandler) getCredit(c echo.Context) error {
	q, errs := bindLedgerQuery(c)
	if !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.ListCredit(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Credit transactions", out)
}

func (h *TransactionHandler) getDebit(c echo.Context) error {
	q, errs := bindLedgerQuery(c)
	if !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.ListDebit(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Debit transactions", out)
}

func (h *TransactionHandler) getReport(c echo.Context) error {
	q, errs := bindLedgerQuery(c)
	if !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.Report(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Transaction report", out)
}

func (h *TransactionHandler) postSettle(c echo.Context) error {
	vendorID, err := strconv.ParseInt(c.Param("vendorId"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid vendor id", nil)
	}

	var req SettleRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateSettle(vendorID, req.Amount, req.OrderItemIDs); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.uc.Settle(c.Request().Context(), usecase.SettleInput{
		VendorID:     vendorID,
		Amount:       req.Amount,
		OrderItemIDs: req.OrderItemIDs,
		OrderID:      req.OrderID,
		TrxID:        req.TrxID,
		Source:       req.Source,
		Note:         req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Settlement recorded", out)
}

func bindLedgerQuery(c echo.Context) (usecase.LedgerQuery, validator.FieldErrors) {
	start := c.QueryParam("start_date")
	end := c.QueryParam("end_date")

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	return usecase.LedgerQuery{
		StartDate: start,
		EndDate:   end,
		Page:      page,
		PerPage:   perPage,
	}, validator.ValidateLedgerQuery(start, end)
}
