package main

import (
	"context"
	"crypto/tls"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/aramlabs/aram-assistant/internal/api/router"
	"github.com/aramlabs/aram-assistant/internal/chat"
	"github.com/aramlabs/aram-assistant/internal/chatlog"
	appconfig "github.com/aramlabs/aram-assistant/internal/config"
	"github.com/aramlabs/aram-assistant/internal/filters"
	"github.com/aramlabs/aram-assistant/internal/intent"
	"github.com/aramlabs/aram-assistant/internal/lawref"
	"github.com/aramlabs/aram-assistant/internal/observability/metrics"
	"github.com/aramlabs/aram-assistant/internal/response"
	"github.com/aramlabs/aram-assistant/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting aram-assistant API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"version", cfg.AppVersion,
	)

	catalog, err := intent.LoadCatalog(filepath.Join(cfg.DataDir, "intents.json"))
	if err != nil {
		logger.Error("failed to load intent catalog", "error", err)
		os.Exit(1)
	}
	tamilCatalog, err := intent.LoadTamilCatalog(filepath.Join(cfg.DataDir, "tamil_intents.json"), catalog)
	if err != nil {
		logger.Error("failed to load tamil catalog", "error", err)
		os.Exit(1)
	}

	// A missing model is a degraded mode, not a startup failure: the
	// assistant keeps answering on rules alone.
	var model intent.Model
	if lm, err := intent.LoadLinearModel(cfg.ModelPath); err != nil {
		logger.Warn("classifier model unavailable, running rule-only", "path", cfg.ModelPath, "error", err)
	} else {
		model = lm
		logger.Info("classifier model loaded", "path", cfg.ModelPath, "classes", len(lm.Classes()))
	}

	laws, err := lawref.NewLibrary(cfg.LawsDir, logger)
	if err != nil {
		logger.Error("failed to load law library", "error", err)
		os.Exit(1)
	}

	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.RandomSeed))
	}

	arbiter := intent.NewArbiter(catalog,
		intent.NewRuleScorer(catalog),
		intent.NewMLScorer(model, catalog, logger),
		cfg.ConfidenceThreshold, logger)
	detector := intent.NewDetector(catalog, tamilCatalog, arbiter, logger)

	store, cleanup := newLogStore(cfg, logger)
	defer cleanup()

	chatMetrics := metrics.NewChatMetrics(nil)

	svc := chat.NewService(chat.Deps{
		Filters:     filters.NewChain(rng),
		Detector:    detector,
		Laws:        laws,
		Renderer:    response.NewRenderer(rng, logger),
		Store:       store,
		Metrics:     chatMetrics,
		Logger:      logger,
		ResponseMax: cfg.LogResponseMax,
	})

	r := router.New(&router.Config{
		Logger:             logger,
		ChatHandler:        chat.NewHandler(svc, logger),
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: splitOrigins(cfg.CORSAllowedOrigins),
		AppName:            cfg.AppName,
		AppVersion:         cfg.AppVersion,
		Languages:          []string{"English", "Tamil", "Tanglish"},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// newLogStore picks the conversation log backend: Postgres when a
// database is configured, Redis next, in-memory otherwise.
func newLogStore(cfg *appconfig.Config, logger *logging.Logger) (chatlog.Store, func()) {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		logger.Info("conversation logs backed by postgres")
		return chatlog.NewPostgresStore(pool), pool.Close
	}

	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		logger.Info("conversation logs backed by redis", "addr", cfg.RedisAddr)
		return chatlog.NewRedisStore(client), func() { _ = client.Close() }
	}

	logger.Warn("no log backend configured, conversation logs are in-memory only")
	return chatlog.NewMemoryStore(), func() {}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
