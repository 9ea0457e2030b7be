package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"marketplace/internal/config"
	"marketplace/internal/domain/model"
	"marketplace/internal/handler"
	"marketplace/internal/infra/db"
	infraRepo "marketplace/internal/infra/repository"
	"marketplace/internal/server"
	"marketplace/internal/usecase"
	auth "marketplace/internal/usecase/auth_usecase"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	//devは人が読める形式、それ以外はJSONで出す
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.GoEnv == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ApiToken{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Transaction{},
		&model.AssignDeliveryMan{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	tokenRepo := infraRepo.NewApiTokenGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := auth.SystemClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	tokenSvc := auth.NewTokenService(tokenRepo, clock)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, tokenSvc, verifier, clock)
	tokenAdminUC := auth.NewTokenAdminUsecase(tokenRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(txManager)
	orderUC := usecase.NewOrderUsecase(txManager)
	orderStatusUC := usecase.NewOrderStatusUsecase(txManager)
	deliveryUC := usecase.NewDeliveryUsecase(txManager)
	trxUC := usecase.NewTransactionUsecase(txManager, cfg.SettleStrictAmount)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(loginUC, tokenAdminUC),
		Users:        handler.NewUserHandler(registerUC),
		Products:     handler.NewProductHandler(productUC),
		Carts:        handler.NewCartHandler(cartUC),
		Orders:       handler.NewOrderHandler(orderUC, orderStatusUC),
		Deliveries:   handler.NewDeliveryHandler(deliveryUC),
		Transactions: handler.NewTransactionHandler(trxUC),
	}

	//Server起動
	e := server.New()
	server.RegisterRoutes(e, handlers, tokenRepo, userRepo)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
