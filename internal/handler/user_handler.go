package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	auth "marketplace/internal/usecase/auth_usecase"
	"marketplace/internal/validator"
)

// /usersのHTTP
type UserHandler struct {
	register *auth.RegisterUserUsecase
}

// DI
func NewUserHandler(register *auth.RegisterUserUsecase) *UserHandler {
	return &UserHandler{register: register}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// 会員登録は認証不要
func (h *UserHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.POST("/users/create", h.postCreate)
}

func (h *UserHandler) postCreate(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return failed(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validator.ValidateCreateUser(req.Name, req.Email, req.Phone, req.Password); !errs.Empty() {
		return validationFailed(c, errs)
	}

	out, err := h.register.Execute(c.Request().Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return failed(c, http.StatusUnprocessableEntity, "Validation failed", map[string][]string{
				"email": {"The email has already been taken."},
			})
		case errors.Is(err, auth.ErrInvalidEmailFormat),
			errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrWeakPassword),
			errors.Is(err, auth.ErrInvalidRole):
			return failed(c, http.StatusUnprocessableEntity, "Validation failed", map[string]string{"error": err.Error()})
		default:
			return writeError(c, err)
		}
	}

	return success(c, http.StatusCreated, "User created", out.User)
}
