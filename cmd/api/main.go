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

	"github.com/badassgarage/inventory-api/internal/application/auth"
	appinv "github.com/badassgarage/inventory-api/internal/application/inventory"
	"github.com/badassgarage/inventory-api/internal/application/ports"
	"github.com/badassgarage/inventory-api/internal/infrastructure/editor"
	"github.com/badassgarage/inventory-api/internal/infrastructure/seed"
	"github.com/badassgarage/inventory-api/internal/infrastructure/verifier"
	httpRouter "github.com/badassgarage/inventory-api/internal/interfaces/http"
	"github.com/badassgarage/inventory-api/pkg/config"
	"github.com/badassgarage/inventory-api/pkg/logger"
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

	// Catalog Store: snapshot validado al arranque, inmutable durante la vida
	// del proceso.
	store, err := seed.Load(cfg.Catalog.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	log.Info().Int("items", store.Count()).Msg("catálogo cargado")

	// Verificador de credenciales: colaborador externo (http) o bcrypt local.
	var credVerifier ports.CredentialVerifier
	switch cfg.Auth.Mode {
	case "http":
		credVerifier = verifier.NewHTTPClient(cfg.Auth.VerifierURL)
		log.Info().Str("url", cfg.Auth.VerifierURL).Msg("verificador remoto configurado")
	default:
		if cfg.Auth.LocalPassword == "" {
			log.Fatal().Msg("AUTH_LOCAL_PASSWORD es requerido con AUTH_MODE=local")
		}
		local, err := verifier.NewLocalFromPlain(cfg.Auth.LocalEmail, cfg.Auth.LocalPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar verificador local")
		}
		credVerifier = local
	}

	// Editor de items: broker AMQP si está configurado, si no solo log.
	var editSink ports.EditIntentSink = editor.NewLogSink(log)
	if cfg.Editor.AMQPURL != "" {
		pub, err := editor.NewAMQPPublisher(editor.AMQPConfig{
			URL:        cfg.Editor.AMQPURL,
			Exchange:   cfg.Editor.Exchange,
			RoutingKey: cfg.Editor.RoutingKey,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conectar editor AMQP")
		}
		defer pub.Close()
		editSink = pub
		log.Info().Str("exchange", cfg.Editor.Exchange).Msg("editor AMQP configurado")
	}

	authSvc := auth.NewService(credVerifier, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.RateConfig{
		AttemptsPerMinute: cfg.Auth.AttemptsPerMinute,
	}, log)

	presenter := appinv.NewPresenter(store, editSink, log)

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
		Title:    "Garage Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthSvc:   authSvc,
		Presenter: presenter,
		JWTSecret: cfg.JWT.Secret,
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
