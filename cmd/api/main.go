package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/usecase/clock"
	"github.com/amirhossein-jamali/relay-race-book/internal/domain/usecase/racebook"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Wire the race book
	sprinterRepo := repository.NewSprinterRepository(appLogger)
	raceBook := racebook.NewRaceBookUseCase(sprinterRepo, tp, appLogger, cfg.RaceBook.MaxSprinters)
	clockUseCase := clock.NewClockUseCase(tp, appLogger)

	if err := raceBook.SeedSprinters(context.Background(), cfg.RaceBook.Seed); err != nil {
		appLogger.Error("Failed to seed sprinters", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	router := routes.NewRouter(
		appLogger,
		handler.NewSprinterHandler(raceBook, appLogger),
		handler.NewClockHandler(clockUseCase, appLogger),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
