package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	auth "marketplace/internal/usecase/auth_usecase"
	"marketplace/internal/validator"
)

// /authのHTTP
type AuthHandler struct {
	login  *auth.LoginUsecase
	tokens *auth.TokenAdminUsecase
}

// DI
func NewAuthHandler(login *auth.LoginUsecase, tokens *auth.TokenAdminUsecase) *AuthHandler {
	return &AuthHandler{login: login, tokens: tokens}
}

type LoginRequest struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Password      string `json:"password"`
	ExpiresInDays int    `json:"expires_in_days"`
	Name          string `json:"name"`
}

// 公開ルート（ログインだけ認証不要）
func (h *AuthHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.postLogin)
}

// 認証必須ルート
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.postLogout)
	g.GET("/auth/tokens", h.listTokens)
	g.DELETE("/auth/tokens/:id", h.revokeToken)
}

func (h *AuthHandler) postLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateLogin(req.Email, req.Phone, req.Password, req.ExpiresInDays, req.Name); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.login.Execute(c.Request().Context(), auth.LoginInput{
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		TokenName:     req.Name,
		ExpiresInDays: req.ExpiresInDays,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrUserBanned) {
			return failed(c, http.StatusUnauthorized, "Invalid credentials", nil)
		}
		if errors.Is(err, auth.ErrInvalidTokenTTL) {
			errs := validator.FieldErrors{}
			errs.Add("expires_in_days", "The expires in days must be between 1 and 3650.")
			return validationFailed(c, errs)
		}
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Login successful", out)
}

func (h *AuthHandler) postLogout(c echo.Context) error {
	tokenID, ok := getTokenIDFromContext(c)
	if !ok {
		return failed(c, http.StatusUnauthorized, "API token missing", nil)
	}

	if err := h.tokens.Logout(c.Request().Context(), tokenID); err != nil {
		if errors.Is(err, auth.ErrTokenNotFound) {
			return failed(c, http.StatusUnauthorized, "Invalid or expired API token", nil)
		}
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) listTokens(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return failed(c, http.StatusUnauthorized, "API token missing", nil)
	}

	list, err := h.tokens.ListTokens(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return success(c, http.StatusOK, "Tokens retrieved", list)
}

func (h *AuthHandler) revokeToken(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return failed(c, http.StatusUnauthorized, "API token missing", nil)
	}

	tokenID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return failed(c, http.StatusBadRequest, "Invalid token id", nil)
	}

	if err := h.tokens.RevokeToken(c.Request().Context(), tokenID, userID); err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenNotFound):
			return failed(c, http.StatusNotFound, "Token not found", nil)
		case errors.Is(err, auth.ErrNotTokenOwner):
			return failed(c, http.StatusForbidden, "Insufficient permission", nil)
		default:
			return writeError(c, err)
		}
	}

	return success(c, http.StatusOK, "Token revoked", nil)
}
