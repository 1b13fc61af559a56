package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/api"
	"github.com/greenhouse/console/internal/api/handler"
	"github.com/greenhouse/console/internal/core/ports"
	"github.com/greenhouse/console/internal/core/service"
	"github.com/greenhouse/console/internal/infrastructure/apiconfig"
	"github.com/greenhouse/console/internal/infrastructure/db/redis"
	"github.com/greenhouse/console/internal/infrastructure/greenhouseapi"
	"github.com/greenhouse/console/internal/infrastructure/tokenstore"
	"github.com/greenhouse/console/internal/pkg/config"
	"github.com/greenhouse/console/pkg/logger"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
		App:    "greenhouse-console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := map[string]handler.HealthCheck{}

	store, rdb, err := newTokenStore(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	factory := apiconfig.NewFactory(store)
	checks["api_config"] = func(ctx context.Context) error {
		_, err := factory.BaseURL(ctx)
		return err
	}
	if !cfg.API.Configured() {
		log.Warn().Str("api_url", apiconfig.DefaultBaseURL).Msg("GREENHOUSE_API_URL and API_BASE_URL unset, using default backend")
	}
	if base, err := factory.BaseURL(ctx); err == nil {
		log.Info().Str("api_url", base).Str("token_store", cfg.Token.Store).Msg("greenhouse backend configured")
	}

	client := greenhouseapi.NewAPIClient(factory, nil)

	plants := service.NewPlantService(client.Plants, log)
	seeds := service.NewSeedService(client.Seeds, log)
	journal := service.NewJournalService(client.Journal, client.GrowthStages, log)
	employees := service.NewEmployeeService(client.Employees, log)
	clients := service.NewClientService(client.Clients, log)
	admins := service.NewAdminService(client.Administrators, log)
	users := service.NewUserService(client.Users, client.Auth, log)

	session := service.NewSessionController(client.Auth, store, log)
	session.OnLogout(employees.Invalidate)
	client.OnUnauthorized(session.Evict)

	e := api.NewRouter(api.Deps{
		Log:        log,
		Session:    session,
		Dashboards: service.NewDashboardService(plants, seeds, journal, employees, clients, admins, log),
		Plants:     plants,
		Seeds:      seeds,
		Journal:    journal,
		Employees:  employees,
		Clients:    clients,
		Admins:     admins,
		Users:      users,
		Checks:     checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newTokenStore builds the backend named by TOKEN_STORE. The file and redis
// backends sit behind a session tier so "remember me" can be declined.
func newTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, *goredis.Client, error) {
	sessionTier := tokenstore.NewMemoryStore()

	switch cfg.Token.Store {
	case config.TokenStoreMemory:
		return sessionTier, nil, nil

	case config.TokenStoreRedis:
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		persistent := redis.NewTokenStore(rdb, cfg.Redis.Prefix, cfg.Token.Key)
		return tokenstore.NewTiered(sessionTier, persistent, cfg.Token.Remember), rdb, nil

	default:
		persistent, err := tokenstore.NewFileStore(cfg.Token.File, cfg.Token.Key)
		if err != nil {
			return nil, nil, fmt.Errorf("open token file: %w", err)
		}
		return tokenstore.NewTiered(sessionTier, persistent, cfg.Token.Remember), nil, nil
	}
}
