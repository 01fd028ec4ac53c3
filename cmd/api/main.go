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
	"github.com/tu-usuario/red-vital/internal/application/availability"
	"github.com/tu-usuario/red-vital/internal/application/bloodrequest"
	"github.com/tu-usuario/red-vital/internal/application/directory"
	"github.com/tu-usuario/red-vital/internal/application/inventory"
	"github.com/tu-usuario/red-vital/internal/application/reporting"
	infrapdf "github.com/tu-usuario/red-vital/internal/infrastructure/pdf"
	"github.com/tu-usuario/red-vital/internal/infrastructure/postgres"
	infraredis "github.com/tu-usuario/red-vital/internal/infrastructure/redis"
	httpRouter "github.com/tu-usuario/red-vital/internal/interfaces/http"
	"github.com/tu-usuario/red-vital/pkg/config"
	"github.com/tu-usuario/red-vital/pkg/geo"
	"github.com/tu-usuario/red-vital/pkg/logger"
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

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	invRepo := postgres.NewBloodInventoryRepository(pool)
	bankRepo := postgres.NewBloodBankRepository(pool)
	cityRepo := postgres.NewCityRepository(pool)
	requestRepo := postgres.NewBloodRequestRepository(pool)

	publisher := infraredis.NewPublisher(redisClient)
	pdfGenerator := infrapdf.NewMarotoSummaryGenerator()

	inventoryUC := inventory.NewInventoryUseCase(invRepo, bankRepo, publisher, log)
	availabilityUC := availability.NewAvailabilityUseCase(bankRepo, geo.NewHaversine())
	reportingUC := reporting.NewReportingUseCase(invRepo, bankRepo, cityRepo, pdfGenerator)
	directoryUC := directory.NewDirectoryUseCase(bankRepo, cityRepo)
	bloodRequestUC := bloodrequest.NewBloodRequestUseCase(requestRepo, cityRepo)

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
		Title:    "Red Vital API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:    inventoryUC,
		AvailabilityUC: availabilityUC,
		ReportingUC:    reportingUC,
		DirectoryUC:    directoryUC,
		BloodRequestUC: bloodRequestUC,
		JWTSecret:      cfg.JWT.Secret,
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
