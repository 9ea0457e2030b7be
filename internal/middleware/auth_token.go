package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	repo "marketplace/internal/repository"
	auth "marketplace/internal/usecase/auth_usecase"
)

const (
	CtxUserIDKey   = "user_id"      // int64
	CtxUserRoleKey = "user_role"    // string
	CtxScopesKey   = "token_scopes" // []string
	CtxTokenIDKey  = "api_token_id" // int64
)

// bearerAuth用のAPIトークン検証ミドルウェア。
// 平文トークンのsha256ダイジェストでDBを引き、使用可能な行だけ通す。
func AuthToken(tokenRepo repo.ApiTokenRepository, userRepo repo.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return failedJSON(c, http.StatusUnauthorized, "API token missing")
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return failedJSON(c, http.StatusUnauthorized, "API token missing")
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return failedJSON(c, http.StatusUnauthorized, "API token missing")
			}

			ctx := c.Request().Context()
			now := time.Now()

			//平文は照合にだけ使い、ログにも出さない
			token, err := tokenRepo.FindUsableByHash(ctx, auth.HashToken(rawToken), now)
			if err == repo.ErrNotFound {
				return failedJSON(c, http.StatusUnauthorized, "Invalid or expired API token")
			}
			if err != nil {
				log.Error().Err(err).Msg("token lookup failed")
				return failedJSON(c, http.StatusInternalServerError, "Something went wrong")
			}

			user, err := userRepo.FindByID(ctx, token.UserID)
			if err == repo.ErrNotFound {
				return failedJSON(c, http.StatusUnauthorized, "Invalid or expired API token")
			}
			if err != nil {
				log.Error().Err(err).Msg("token user lookup failed")
				return failedJSON(c, http.StatusInternalServerError, "Something went wrong")
			}
			if user.IsBanned {
				return failedJSON(c, http.StatusUnauthorized, "Invalid or expired API token")
			}

			//使用痕跡の記録。失敗してもリクエストは通す
			if err := tokenRepo.Touch(ctx, token.ID, now, c.RealIP()); err != nil {
				log.Warn().Err(err).Int64("token_id", token.ID).Msg("token touch failed")
			}

			//contextへ保存
			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxUserRoleKey, string(user.Role))
			c.Set(CtxScopesKey, token.Scopes)
			c.Set(CtxTokenIDKey, token.ID)

			return next(c)
		}
	}
}

type failedBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

func failedJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, failedBody{Status: "failed", Message: msg})
}
