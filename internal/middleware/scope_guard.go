package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ScopeGuardは指定スコープを持つトークンだけ通す。
// AuthTokenの後段に置くこと。
func ScopeGuard(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scopes, _ := c.Get(CtxScopesKey).([]string)

			for _, s := range scopes {
				if s == scope {
					return next(c)
				}
			}

			return failedJSON(c, http.StatusForbidden, "Insufficient permission")
		}
	}
}
