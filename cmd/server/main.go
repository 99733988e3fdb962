package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/ligasala/registration-portal/internal/api"
	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
	"github.com/ligasala/registration-portal/internal/core/service"
	"github.com/ligasala/registration-portal/internal/infrastructure/cache"
	"github.com/ligasala/registration-portal/internal/infrastructure/config"
	"github.com/ligasala/registration-portal/internal/infrastructure/upstream"
	"github.com/ligasala/registration-portal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "registration-portal",
	})

	client := upstream.New(upstream.Config{
		BaseURL:       cfg.Upstream.BaseURL,
		LookupTimeout: cfg.Upstream.LookupTimeout,
		SubmitTimeout: cfg.Upstream.SubmitTimeout,
		ExportTimeout: cfg.Upstream.ExportTimeout,
	}, log)

	var rdb *redis.Client
	var registrationGateway ports.RegistrationGateway = client
	var fixtureGateway ports.FixtureGateway = client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		registrationGateway = cache.NewLookupCache(client, rdb, cfg.Redis.LookupTTL, log)
		fixtureGateway = cache.NewFixtureCache(client, rdb, cfg.Redis.FixtureTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis cache enabled")
	}

	window := domain.RegistrationWindow{Open: cfg.Registration.Open, Notice: cfg.Registration.Notice}

	e := api.NewRouter(api.Dependencies{
		Logger:       log,
		Registration: service.NewRegistrationService(registrationGateway, window, log),
		Roster:       service.NewRosterService(client, log),
		Fixture:      service.NewFixtureService(fixtureGateway, log),
		Admin:        service.NewAdminService(client, log),
		Export:       service.NewExportService(client, log),
		Redis:        rdb,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Bool("registration_open", window.Open).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
