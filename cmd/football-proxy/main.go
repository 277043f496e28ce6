// Command football-proxy runs the caching proxy in front of
// API-Football: Redis-backed response cache, per-caller rate limiting
// and normalized response schemas.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tifofan/football-proxy/internal/config"
	"github.com/tifofan/football-proxy/internal/handler"
	"github.com/tifofan/football-proxy/pkg/cache"
	"github.com/tifofan/football-proxy/pkg/logging"
	"github.com/tifofan/football-proxy/pkg/provider"
	"github.com/tifofan/football-proxy/pkg/proxy"
	"github.com/tifofan/football-proxy/pkg/ratelimit"
)

// redisPinger adapts the Redis client to the readiness probe.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	configPath := flag.String("config", "", "path to config file (optional, env-only without it)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fallback := logging.Setup(logging.DefaultConfig())
		fallback.Fatal().Err(err).Msg("Config loading failed")
	}

	logger := logging.Setup(cfg.Logger.LoggingConfig())
	logger.Info().Str("addr", cfg.Server.Addr).Msg("Starting football-proxy")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis connection failed")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")

	store := cache.NewStore(cache.NewRedisBackend(redisClient), logger)

	upstream := provider.New(provider.Config{
		BaseURL:           cfg.Upstream.BaseURL,
		APIKey:            cfg.Upstream.APIKey,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
	}, logger)

	svc := proxy.NewService(cache.DefaultPolicies(), store, upstream, logger)

	policy := ratelimit.DefaultPolicy()
	policy.DefaultLimit = cfg.RateLimit.DefaultLimit
	policy.ExpensiveLimit = cfg.RateLimit.ExpensiveLimit
	policy.Window = cfg.RateLimit.Window
	policy.AuthMultiplier = cfg.RateLimit.AuthMultiplier

	limiter := ratelimit.NewLimiter(logger)

	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	api := handler.NewAPI(svc, limiter, policy, logger)
	handler.Register(engine, api, redisPinger{client: redisClient})

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: engine,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()
	logger.Info().Str("addr", cfg.Server.Addr).Msg("Listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logger.Info().Msg("Stopped")
}
