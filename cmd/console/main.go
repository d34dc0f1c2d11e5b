package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/relay-race-book/internal/domain/usecase/racebook"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/console"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// zap writes to stderr, so the menu on stdout stays readable
	appLogger, err := logger.NewZapLogger(logger.Options{Level: cfg.Logger.Level, Format: cfg.Logger.Format})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	sprinterRepo := repository.NewSprinterRepository(appLogger)
	raceBook := racebook.NewRaceBookUseCase(sprinterRepo, tp, appLogger, cfg.RaceBook.MaxSprinters)

	if err := raceBook.SeedSprinters(ctx, cfg.RaceBook.Seed); err != nil {
		log.Fatalf("Failed to seed sprinters: %v", err)
	}

	if err := console.NewConsole(raceBook, appLogger, os.Stdin, os.Stdout).Run(ctx); err != nil {
		appLogger.Error("Console stopped", map[string]any{
			"error": err.Error(),
		})
	}
}
