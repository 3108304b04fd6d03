package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyagdw/word-wizards/internal/cache"
	"github.com/andyagdw/word-wizards/internal/config"
	"github.com/andyagdw/word-wizards/internal/pkg/middleware"
	"github.com/andyagdw/word-wizards/internal/pkg/router"
	"github.com/andyagdw/word-wizards/internal/provider"
	"github.com/andyagdw/word-wizards/internal/rest"
	"github.com/andyagdw/word-wizards/internal/service"
	"github.com/andyagdw/word-wizards/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func run(ctx context.Context) error {
	slog.Info("starting word data service")

	cfg := config.FromEnv()

	db, err := store.NewPostgresDB(store.PostgresConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer db.Close()

	cacheStore, closeCache, err := newCacheStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create cache backend: %w", err)
	}
	defer closeCache()

	client := provider.NewClient(provider.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Host:    cfg.Provider.Host,
		Timeout: cfg.Provider.Timeout,
		RPS:     cfg.Provider.RPS,
		Burst:   cfg.Provider.Burst,
	})

	words := service.NewWordsService(client, cache.NewDaily(cacheStore, cfg.Cache.Timezone))
	favourites := service.NewFavouritesService(store.NewPostgresStore(db))

	rt := router.New()
	rt.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rt.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
	rt.Handle("/metrics", promhttp.Handler())

	api := rt.SubRouter("/api/v1")
	api.Use(middleware.Recover(), middleware.Log(), middleware.Auth([]byte(cfg.AuthSecret)))
	api.Handle("/", rest.NewAPI(words, favourites))

	httpSrv := &http.Server{
		Addr:         cfg.Http.ListenAddr,
		IdleTimeout:  cfg.Http.IdleTimeout,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		Handler:      rt,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func newCacheStore(cfg config.Config) (cache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case "redis":
		r := cache.NewRedis(cache.RedisConfig{
			Host:     cfg.Cache.Redis.Host,
			Port:     cfg.Cache.Redis.Port,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		return r, func() { _ = r.Close() }, nil
	case "memory":
		m, err := cache.NewMemory(cfg.Cache.MaxKeys, cfg.Cache.MaxCost)
		if err != nil {
			return nil, nil, err
		}
		return m, m.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("word data service terminated with error", "error", err)
		os.Exit(1)
	}
}
