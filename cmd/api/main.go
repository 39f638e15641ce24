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

	"github.com/jhoicas/feedme-api/internal/application/analytics"
	"github.com/jhoicas/feedme-api/internal/application/auth"
	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/feedme-api/internal/infrastructure/pdf"
	"github.com/jhoicas/feedme-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/feedme-api/internal/interfaces/http"
	"github.com/jhoicas/feedme-api/pkg/config"
	"github.com/jhoicas/feedme-api/pkg/logger"
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

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	restaurantUC := usecase.NewRestaurantUseCase(restaurantRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	dishUC := usecase.NewDishUseCase(dishRepo, ingredientRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo, dishRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, ingredientRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, orderRepo, purchaseRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, dishRepo)
	salesUC := analytics.NewSalesUseCase(orderRepo)

	// PDF del cierre diario
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportPDFUC := usecase.NewReportPDFUseCase(reportRepo, restaurantRepo, pdfGenerator)

	sessionStore := session.NewStore(cfg.Session.CookieName, cfg.Session.HashKey, cfg.Session.BlockKey)

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
		Title:    "FeedMe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RestaurantUC: restaurantUC,
		EmployeeUC:   employeeUC,
		DishUC:       dishUC,
		MenuUC:       menuUC,
		PurchaseUC:   purchaseUC,
		ReportUC:     reportUC,
		ReportPDFUC:  reportPDFUC,
		OrderUC:      orderUC,
		SalesUC:      salesUC,
		SessionStore: sessionStore,
		JWTSecret:    cfg.JWT.Secret,
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
