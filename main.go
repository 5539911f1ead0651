package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalln("Failed to load configuration:", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalln("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	dispatcher, err := NewDispatcher(cfg, DefaultCatalog(), logger)
	if err != nil {
		logger.Fatal("Invalid response catalog", zap.Error(err))
	}

	app := newApp(NewHandler(dispatcher, cfg, logger))

	go func() {
		logger.Info("Starting webhook server",
			zap.String("addr", cfg.Addr()),
			zap.Strings("supportedLanguages", cfg.SupportedLanguages),
			zap.String("defaultLanguage", cfg.DefaultLanguage),
			zap.Bool("debug", cfg.DebugMode))

		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down webhook server")
	if err := app.Shutdown(); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

func newApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ErrorHandler: h.errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(cors.New())

	app.Post("/api/chatbot", h.Webhook)
	app.Post("/api/chatbot/test", h.Test)
	app.Get("/api/chatbot/health", h.Health)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(serviceName + " is running")
	})

	return app
}

func newLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.DebugMode {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
