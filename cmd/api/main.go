package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/autohaus/dealership/internal/api"
	"github.com/autohaus/dealership/internal/api/handler"
	"github.com/autohaus/dealership/internal/core/auth"
	"github.com/autohaus/dealership/internal/core/ports"
	"github.com/autohaus/dealership/internal/core/service"
	"github.com/autohaus/dealership/internal/infrastructure/config"
	mongodb "github.com/autohaus/dealership/internal/infrastructure/db/mongo"
	redisdb "github.com/autohaus/dealership/internal/infrastructure/db/redis"
	"github.com/autohaus/dealership/internal/infrastructure/rates"
	"github.com/autohaus/dealership/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "dealership",
	})
	lg := logger.Component("main")

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect mongodb")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		lg.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect redis")
	}

	accountRepo := mongodb.NewAccountRepository(db)
	carRepo := mongodb.NewCarRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	statsRepo := mongodb.NewStatsRepository(db)

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	sessions := auth.NewSessionResolver(tokens, accountRepo, cfg.RevocationPolicy())

	authService := service.NewAuthService(accountRepo, hasher, tokens, cfg.Auth.TokenTTL, logger.Component("auth"))
	statsService := service.NewStatsService(statsRepo, logger.Component("stats"))
	catalogService := service.NewCatalogService(carRepo, brandRepo, logger.Component("catalog"))
	salesService := service.NewSalesService(clientRepo, orderRepo, carRepo, logger.Component("sales"))
	documentService := service.NewDocumentService(documentRepo, carRepo, logger.Component("documents"))
	rateService := service.NewRateService(rateProvider(cfg, redisClient), cfg.Rates.Fallback, logger.Component("rates"))

	if cfg.Admin.Email != "" {
		created, err := authService.EnsureAdmin(ctx, ports.SignupInput{
			Email:    cfg.Admin.Email,
			Name:     cfg.Admin.Name,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			lg.Fatal().Err(err).Msg("failed to bootstrap admin")
		}
		if created {
			lg.Info().Str("email", cfg.Admin.Email).Msg("bootstrap admin created")
		}
	}

	e := api.NewRouter(api.Deps{
		Log:       logger.Component("http"),
		Sessions:  sessions,
		Auth:      authService,
		Dashboard: statsService,
		Catalog:   catalogService,
		Sales:     salesService,
		Documents: documentService,
		Rates:     rateService,
		Health: map[string]handler.Pinger{
			"mongodb": func(ctx context.Context) error { return mongodb.Ping(ctx, mongoClient) },
			"redis":   func(ctx context.Context) error { return redisdb.Ping(ctx, redisClient) },
		},
		Cookies: handler.CookieOptions{Secure: cfg.Auth.CookieSecure},
		Login:   api.LoginLimit{PerSecond: cfg.Limits.LoginPerSecond, Burst: cfg.Limits.LoginBurst},
		Metrics: true,
	})

	go func() {
		lg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("http shutdown")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("mongodb disconnect")
	}
	if err := redisClient.Close(); err != nil {
		lg.Error().Err(err).Msg("redis close")
	}
	lg.Info().Msg("bye")
}

// rateProvider returns the live provider chain, or nil when no upstream is
// configured and only fallback rates apply.
func rateProvider(cfg *config.Config, client *goredis.Client) ports.RateProvider {
	if cfg.Rates.URL == "" {
		return nil
	}
	live := rates.NewHTTPProvider(cfg.Rates.URL, nil)
	return redisdb.NewRateCache(client, live, cfg.Rates.CacheTTL, logger.Component("rate-cache"))
}
