package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"weather-report/api"
	"weather-report/config"
	"weather-report/datasource"
	"weather-report/history"
	"weather-report/lookup"
	"weather-report/marquee"
	"weather-report/providers/openweathermap"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file (default: ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if cfg.OWM.APIKey == "" {
		logger.Error("no OpenWeatherMap API key configured, set WEATHER_REPORT_OWM_APIKEY")
		os.Exit(1)
	}

	provider := newProvider(cfg, logger)

	store, closeStore, err := newHistoryStore(cfg, logger)
	if err != nil {
		logger.Error("failed to set up history", "backend", cfg.History.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	svc := lookup.NewService(provider, provider, store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mq := marquee.New(cfg.Marquee.Cities, cfg.Marquee.Initial, cfg.Marquee.Interval, logger)
	stopMarquee := mq.Start(ctx)

	server := api.NewServer(svc, mq, cfg.GetServerAddr(), logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-shutdownChan:
		logger.Info("shutting down", "signal", sig.String())
	case <-ctx.Done():
	}

	stopMarquee()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newProvider creates the OpenWeatherMap provider, rate limited unless disabled
func newProvider(cfg *config.Config, logger *slog.Logger) datasource.Provider {
	owm := openweathermap.NewProvider(cfg.OWM.APIKey, logger)
	owm.SetBaseURL(cfg.OWM.BaseURL)
	owm.SetTimeout(cfg.OWM.Timeout)

	if !cfg.RateLimit.Enabled {
		return owm
	}

	limited := datasource.NewRateLimitedProvider(owm, cfg.RateLimit.RPS, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	logger.Info("applied rate limiting", "provider", owm.Name(), "rps", cfg.RateLimit.RPS, "burst", cfg.RateLimit.Burst)
	return limited
}

// newHistoryStore selects the configured history backend
func newHistoryStore(cfg *config.Config, logger *slog.Logger) (history.Store, func(), error) {
	if cfg.History.Backend != "redis" {
		return history.NewMemoryStore(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	logger.Info("using redis history", "addr", cfg.Redis.Addr, "key", cfg.Redis.Key)
	return history.NewRedisStore(rdb, cfg.Redis.Key), func() { _ = rdb.Close() }, nil
}
