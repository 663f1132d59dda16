package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/trendify-api/internal/application/auth"
	"github.com/jhoicas/trendify-api/internal/application/store"
	"github.com/jhoicas/trendify-api/internal/application/usecase"
	"github.com/jhoicas/trendify-api/internal/infrastructure/cache"
	"github.com/jhoicas/trendify-api/internal/infrastructure/mail"
	"github.com/jhoicas/trendify-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/trendify-api/internal/infrastructure/pdf"
	"github.com/jhoicas/trendify-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/trendify-api/internal/interfaces/http"
	"github.com/jhoicas/trendify-api/pkg/config"
	"github.com/jhoicas/trendify-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rdb, err := cache.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	featuredCache := cache.NewFeaturedProductsCache(rdb, log)
	mailer := mail.NewSMTPMailer(cfg.SMTP, log)
	gateway := payment.NewEMISClient(cfg.Payment)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, mailer)
	itemUC := usecase.NewItemUseCase(itemRepo, categoryRepo, featuredCache)
	cartUC := usecase.NewCartUseCase(cartRepo, itemRepo)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, itemRepo)
	purchaseUC := store.NewPurchaseUseCase(txRunner, itemRepo, purchaseRepo, gateway, featuredCache, cfg.Payment.Timeout)
	receiptUC := store.NewReceiptUseCase(purchaseRepo, itemRepo, userRepo, receiptGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Trendify API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		ItemUC:     itemUC,
		CartUC:     cartUC,
		FavoriteUC: favoriteUC,
		PurchaseUC: purchaseUC,
		ReceiptUC:  receiptUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
