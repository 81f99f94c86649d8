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
	"github.com/usse-dev/almacen-api/internal/application/auth"
	"github.com/usse-dev/almacen-api/internal/application/catalog"
	"github.com/usse-dev/almacen-api/internal/application/movement"
	"github.com/usse-dev/almacen-api/internal/application/project"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/infrastructure/excel"
	infrapdf "github.com/usse-dev/almacen-api/internal/infrastructure/pdf"
	"github.com/usse-dev/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/usse-dev/almacen-api/internal/interfaces/http"
	"github.com/usse-dev/almacen-api/pkg/config"
	"github.com/usse-dev/almacen-api/pkg/logger"
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

	articuloRepo := postgres.NewArticuloRepository(pool)
	puntaRepo := postgres.NewPuntaRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogos := entity.NewCatalogos(cfg.Catalog.Categorias, cfg.Catalog.Unidades)

	catalogUC := catalog.NewUseCase(articuloRepo, puntaRepo, movimientoRepo, catalogos)
	proyectoUC := project.NewUseCase(proyectoRepo)

	applyUC := movement.NewApplyUseCase(txRunner)
	sessions := movement.NewSessions(catalogos)
	movimientoSvc := movement.NewService(sessions, applyUC)

	authUC := auth.NewUseCase(
		auth.Credential{
			Username:     cfg.Auth.Username,
			Password:     cfg.Auth.Password,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		ProyectoUC:    proyectoUC,
		MovimientoSvc: movimientoSvc,
		Exporter:      excel.NewInventarioExporter(),
		ValeGen:       infrapdf.NewMarotoValeGenerator(),
		JWTSecret:     cfg.JWT.Secret,
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
