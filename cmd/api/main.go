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

	"github.com/olionece/gestione-olio/internal/application/movement"
	"github.com/olionece/gestione-olio/internal/application/stock"
	"github.com/olionece/gestione-olio/internal/application/usecase"
	infrapdf "github.com/olionece/gestione-olio/internal/infrastructure/pdf"
	"github.com/olionece/gestione-olio/internal/infrastructure/postgres"
	httpRouter "github.com/olionece/gestione-olio/internal/interfaces/http"
	"github.com/olionece/gestione-olio/pkg/config"
	"github.com/olionece/gestione-olio/pkg/logger"
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

	movementRepo := postgres.NewMovementRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	stockViewRepo := postgres.NewStockViewRepository(pool)
	userRoleRepo := postgres.NewUserRoleRepository(pool)

	stockUC := stock.NewUseCase(stockViewRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, stockViewRepo)
	variantUC := usecase.NewVariantUseCase(variantRepo)
	profileUC := usecase.NewProfileUseCase(userRoleRepo)
	recorder := movement.NewRecorder(movementRepo, variantRepo, warehouseRepo)
	queryEngine := movement.NewQueryEngine(movementRepo)

	// Zona horaria de presentación de las exportaciones (columna Data).
	location, err := time.LoadLocation(cfg.Export.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.Export.Timezone).Msg("zona horaria inválida, usando local")
		location = time.Local
	}
	pdfGenerator := infrapdf.NewMovementsPDFGenerator(cfg.Export.DateLayout, location)

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
		Title:    "Gestione Olio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:     stockUC,
		WarehouseUC: warehouseUC,
		VariantUC:   variantUC,
		ProfileUC:   profileUC,
		Recorder:    recorder,
		QueryEngine: queryEngine,
		PDF:         pdfGenerator,
		Export: httpRouter.ExportOptions{
			DateLayout: cfg.Export.DateLayout,
			Location:   location,
		},
		Roles:     userRoleRepo,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
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
