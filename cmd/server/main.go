package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"contentkit/internal/config"
	"contentkit/internal/db"
	"contentkit/internal/handler"
	"contentkit/internal/service"
	"contentkit/pkg/ai"
	"contentkit/pkg/blog"
	"contentkit/pkg/features"
	"contentkit/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type Application struct {
	configPath string
	debug      bool
}

func main() {
	app := &Application{}

	flag.StringVar(&app.configPath, "config", "config/dev.yaml", "Configuration file path")
	flag.BoolVar(&app.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := app.Run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func (app *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewManager().Load(app.configPath)
	if err != nil {
		return err
	}

	logCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}
	if app.debug {
		logCfg.Level = "debug"
	}
	logger.SetLogger(logger.New(logCfg))
	appLog := logger.GetLogger().WithComponent("server")

	database, err := db.New(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close()

	keywords := service.NewKeywordService(db.NewKeywordStore(database))
	posts := blog.NewService(db.NewPostStore(database), blog.NewGoldmarkRenderer())

	cache := features.NewCache(cfg.Features.CacheSize, time.Duration(cfg.Features.CacheTTLSec)*time.Second)
	catalog := features.NewCatalog(cfg.Features.CatalogPath, cache)

	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}
	if generator == nil {
		appLog.Warn("Generative APIs not configured, draft endpoints disabled")
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:      "contentkit",
		ErrorHandler: fiberErrorHandler,
	})
	handler.New(keywords, posts, catalog, generator).Register(fiberApp)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errChan := make(chan error, 1)
	go func() {
		appLog.WithField("addr", addr).Info("Server listening")
		errChan <- fiberApp.Listen(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		appLog.WithField("signal", sig.String()).Info("Shutting down")
	}

	if err := fiberApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	appLog.Info("Server stopped")
	return nil
}

// buildGenerator wires the generative API clients when both endpoints are
// configured; otherwise the server runs without them.
func buildGenerator(cfg *config.Config) (service.GeneratorService, error) {
	if cfg.TextAPI.Endpoint == "" || cfg.ImageAPI.Endpoint == "" {
		return nil, nil
	}

	text, err := ai.NewTextClient(ai.Config{
		Endpoint: cfg.TextAPI.Endpoint,
		APIKey:   cfg.TextAPI.APIKey,
		Model:    cfg.TextAPI.Model,
		Timeout:  time.Duration(cfg.TextAPI.Timeout) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	image, err := ai.NewImageClient(ai.Config{
		Endpoint: cfg.ImageAPI.Endpoint,
		APIKey:   cfg.ImageAPI.APIKey,
		Model:    cfg.ImageAPI.Model,
		Timeout:  time.Duration(cfg.ImageAPI.Timeout) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	return service.NewGeneratorService(text, image), nil
}

func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
