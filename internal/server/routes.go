package server

import (
	"github.com/labstack/echo/v4"

	"marketplace/internal/domain/model"
	"marketplace/internal/handler"
	"marketplace/internal/middleware"
	repo "marketplace/internal/repository"
)

// ルート登録に必要なhandler一式
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Products     *handler.ProductHandler
	Carts        *handler.CartHandler
	Orders       *handler.OrderHandler
	Deliveries   *handler.DeliveryHandler
	Transactions *handler.TransactionHandler
}

// RegisterRoutesは全ルートを登録する。
// ログインと会員登録だけ認証不要、/transactionsはさらにadminスコープ必須。
func RegisterRoutes(e *echo.Echo, h Handlers, tokenRepo repo.ApiTokenRepository, userRepo repo.UserRepository) {
	h.Auth.RegisterPublicRoutes(e)
	h.Users.RegisterPublicRoutes(e)

	authed := e.Group("", middleware.AuthToken(tokenRepo, userRepo))
	h.Auth.RegisterRoutes(authed)
	h.Products.RegisterRoutes(authed)
	h.Carts.RegisterRoutes(authed)
	h.Orders.RegisterRoutes(authed)
	h.Deliveries.RegisterRoutes(authed)

	admin := e.Group("", middleware.AuthToken(tokenRepo, userRepo), middleware.ScopeGuard(model.ScopeAdmin))
	h.Transactions.RegisterRoutes(admin)
}
