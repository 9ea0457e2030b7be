package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"marketplace/internal/middleware"
	"marketplace/internal/usecase"
)

// 全エンドポイント共通のレスポンス封筒。
// 成功: {status:"success", message, data}
// 失敗: {status:"failed", message, errors}
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func failed(c echo.Context, code int, message string, errs interface{}) error {
	return c.JSON(code, Envelope{
		Status:  "failed",
		Message: message,
		Errors:  errs,
	})
}

// 422のバリデーション失敗
func validationFailed(c echo.Context, errs interface{}) error {
	return failed(c, http.StatusUnprocessableEntity, "Validation failed", errs)
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return failed(c, he.Status, he.Message, nil)
	}

	//想定外は詳細をログに残し、クライアントには一般化したメッセージだけ返す
	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
	return failed(c, http.StatusInternalServerError, "Something went wrong", map[string]string{"error": err.Error()})
}

// AuthTokenが詰めた値の取り出し
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v, ok := c.Get(middleware.CtxUserIDKey).(int64)
	return v, ok
}

func getTokenIDFromContext(c echo.Context) (int64, bool) {
	v, ok := c.Get(middleware.CtxTokenIDKey).(int64)
	return v, ok
}
