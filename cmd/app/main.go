package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wiggy/cmd"
	httpin "wiggy/internal/adapters/in/http"
	"wiggy/internal/adapters/out/rabbitmq"
	"wiggy/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	db, err := cmd.OpenDatabase(config)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := cmd.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if config.SeedCatalog {
		seeded, seedErr := cmd.SeedCatalog(ctx, db)
		if seedErr != nil {
			return fmt.Errorf("seed catalog: %w", seedErr)
		}
		logger.InfoContext(ctx, "catalog seeded", "restaurants", seeded)
	}

	var publisher ports.EventPublisher
	if config.AMQPURL != "" {
		eventPublisher, closePublisher, dialErr := rabbitmq.Dial(config.AMQPURL, config.AMQPExchange, logger)
		if dialErr != nil {
			return dialErr
		}
		defer func() { _ = closePublisher() }()
		publisher = eventPublisher
	}

	app, err := cmd.NewCompositionRoot(config, cmd.Dependencies{
		DB:        db,
		Publisher: publisher,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, config.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(httpin.RequestLogger(logger))
	e.Use(middleware.CORS())

	if err := app.CreateHTTPServer().Register(e); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.InfoContext(shutdownCtx, "shutting down")
	return e.Shutdown(shutdownCtx)
}
