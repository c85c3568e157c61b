package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/logvault/logvault/internal/config"
	"github.com/logvault/logvault/internal/database"
	"github.com/logvault/logvault/internal/observability"
	"github.com/logvault/logvault/internal/server"
	"github.com/logvault/logvault/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(ctx, cfg.Database.URL()); err != nil {
		logger.Fatal().Err(err).Msg("migrations")
	}

	nrApp, err := observability.NewApplication(cfg.Observability)
	if err != nil {
		logger.Fatal().Err(err).Msg("new relic")
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger, nrApp)
	if err != nil {
		logger.Fatal().Err(err).Msg("database pool")
	}
	defer pool.Close()

	blobs, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("storage client")
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		logger.Warn().Err(err).Msg("ensure bucket failed, uploads may fail")
	}

	srv := server.New(cfg, pool, blobs)
	logger.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := srv.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
