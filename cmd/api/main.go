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

	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/auth"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/application/usecase"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/infrastructure/postgres"
	"github.com/Andres05MD/Wingx-Stock-sub001/internal/infrastructure/rates"
	httpRouter "github.com/Andres05MD/Wingx-Stock-sub001/internal/interfaces/http"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/config"
	"github.com/Andres05MD/Wingx-Stock-sub001/pkg/logger"
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

	// rootCtx es el dueño de todo lo que corre en background; cancelarlo
	// detiene el refresco periódico de la tasa de forma determinista.
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(rootCtx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(rootCtx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrar esquema")
	}

	store := postgres.NewDocumentStore(pool)
	userRepo := postgres.NewUserRepository(pool)

	scopes := usecase.NewScopeResolver(userRepo, log)
	garmentUC := usecase.NewGarmentService(store, scopes)
	clientUC := usecase.NewClientService(store, scopes)
	orderUC := usecase.NewOrderService(store, scopes)
	stockUC := usecase.NewStockService(store, scopes)
	materialUC := usecase.NewMaterialService(store, scopes)
	eventUC := usecase.NewEventService(store, scopes)
	dashboardUC := usecase.NewDashboardUseCase(store, scopes)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	rateCache := rates.NewCache(
		rates.NewBCVClient(cfg.Rates.URL, nil),
		time.Duration(cfg.Rates.TTLMinutes)*time.Minute,
		log,
	)
	rateCache.Start(rootCtx)

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
		Title:    "Wingx Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		GarmentUC:   garmentUC,
		ClientUC:    clientUC,
		OrderUC:     orderUC,
		StockUC:     stockUC,
		MaterialUC:  materialUC,
		EventUC:     eventUC,
		DashboardUC: dashboardUC,
		RateCache:   rateCache,
		JWTSecret:   cfg.JWT.Secret,
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
	cancel() // detiene el refresco de tasa antes de cerrar el servidor

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
