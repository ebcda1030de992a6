package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/auth"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/pedidos"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/usecase"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/cache"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/cloudinary"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/events"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/pdf"
	"github.com/jhoicas/pedidos-hosteleria/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pedidos-hosteleria/internal/interfaces/http"
	"github.com/jhoicas/pedidos-hosteleria/pkg/config"
	pkgjwt "github.com/jhoicas/pedidos-hosteleria/pkg/jwt"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool, productRepo)

	var store ports.AssetStore = cloudinary.Disabled{}
	if cld, err := cloudinary.New(cfg.Cloudinary); err == nil {
		store = cld
	} else {
		log.Warn().Err(err).Msg("subida de imágenes desactivada")
	}

	m := metrics.New()
	cleaner := assets.NewCleaner(store, log, m, cfg.Assets.CleanupTimeout)

	var catalogCache ports.CatalogCache = cache.NewCatalogCache(cfg.Catalog.CacheTTL, m)
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedisCatalogCache(ctx, cfg.Redis, cfg.Catalog.CacheTTL, m, log)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, caché en memoria")
		} else {
			defer rc.Close()
			catalogCache = rc
		}
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, pkgjwt.DefaultTTL)

	authUC := auth.NewAuthUseCase(userRepo, store, cleaner, tokens, log)
	productUC := usecase.NewProductUseCase(productRepo, store, cleaner, catalogCache, log)
	pedidoUC := pedidos.NewPedidoUseCase(pedidoRepo, productRepo, userRepo,
		infrapdf.NewAlbaranGenerator(cfg.App.Name), m, log)
	if cfg.Kafka.Enabled() {
		publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		pedidoUC.WithEvents(publisher)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de eventos activada")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Pedidos Hostelería API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:     authUC,
		Products: productUC,
		Pedidos:  pedidoUC,
		Tokens:   tokens,
		Resolver: auth.NewSubjectResolver(userRepo),
		Metrics:  m.Handler(),
		AppName:  cfg.App.Name,
		Log:      log,
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
	// Esperar los borrados de imágenes en curso antes de salir.
	cleaner.Wait()

	log.Info().Msg("aplicación detenida")
}
