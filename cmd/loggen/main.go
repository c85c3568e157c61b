package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/logvault/logvault/internal/auth"
	"github.com/logvault/logvault/internal/config"
	"github.com/logvault/logvault/internal/database"
	"github.com/logvault/logvault/internal/generator"
	"github.com/logvault/logvault/internal/repository"
	"github.com/logvault/logvault/internal/service"
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

	pool, err := database.NewPool(ctx, cfg.Database, logger, nil)
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

	logService := service.NewLogService(
		repository.NewLogRepository(pool),
		blobs,
		auth.NewIdentityAuthorizer(cfg.Auth.AdminIdentity),
	)
	gen := generator.New(logService, logger)

	c := cron.New()
	_, err = c.AddFunc("@every "+cfg.Generator.Interval, func() {
		if err := gen.Emit(ctx); err != nil {
			logger.Error().Err(err).Msg("emit failed")
		}
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("schedule generator")
	}

	logger.Info().Str("interval", cfg.Generator.Interval).Msg("starting log simulation")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info().Msg("log simulation stopped")
}
