package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/credit-dispute/internal/cache"
	"github.com/pribylovaa/credit-dispute/internal/config"
	"github.com/pribylovaa/credit-dispute/internal/credit"
	cdhttp "github.com/pribylovaa/credit-dispute/internal/http"
	"github.com/pribylovaa/credit-dispute/internal/http/middleware"
	"github.com/pribylovaa/credit-dispute/internal/letter"
	"github.com/pribylovaa/credit-dispute/internal/service"
	"github.com/pribylovaa/credit-dispute/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// Optional .env for local runs; real environment wins.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting credit-dispute", slog.String("env", cfg.Env))

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	st, err := postgres.New(rootCtx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	log.Info("storage_initialized")

	if !cfg.DB.SkipMigrations {
		if err := st.Migrate(rootCtx); err != nil {
			log.Error("migrate_failed", slog.String("err", err.Error()))
			st.Close()
			os.Exit(1)
		}
		log.Info("migrations_applied")
	}

	svc := service.New(st, cfg.Auth)
	svc.SetCreditProvider(credit.New(cfg.Credit.ProviderLatency))
	svc.SetLetterGenerator(letterGenerator(cfg.Letters, log))

	if cfg.Redis.Enabled() {
		c, err := cache.NewRedisCache(rootCtx, cfg.Redis.RedisURL, cfg.Redis.Prefix)
		if err != nil {
			// The cache is optional: run without it.
			log.Warn("stats_cache_unavailable", slog.String("err", err.Error()))
		} else {
			svc.SetStatsCache(c, cfg.Redis.StatsTTL)
			defer func() {
				if cerr := c.Close(); cerr != nil {
					log.Warn("stats_cache_close_failed", slog.String("err", cerr.Error()))
				}
			}()
			log.Info("stats_cache_enabled")
		}
	}

	startRefreshJanitor(rootCtx, svc, log, cfg.Auth.JanitorInterval)

	apiHandler := cdhttp.NewRouter(svc, cdhttp.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Service,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        middleware.NewMetrics(prometheus.DefaultRegisterer),
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		rootCancel()
		st.Close()
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// letterGenerator picks the AI strategy with template fallback when an API
// key is configured, the template alone otherwise.
func letterGenerator(cfg config.LettersConfig, log *slog.Logger) letter.Generator {
	if !cfg.AIEnabled() {
		log.Info("letters_template_only")
		return letter.NewTemplate()
	}

	ai := letter.NewOpenAI(letter.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	log.Info("letters_ai_enabled", slog.String("model", cfg.Model))

	return letter.NewFallback(ai, cfg.Timeout)
}

// startRefreshJanitor periodically deletes expired refresh tokens.
func startRefreshJanitor(ctx context.Context, svc *service.Service, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if _, err := svc.PurgeExpiredRefreshTokens(ctx); err != nil {
					log.Error("refresh_janitor_failed", slog.String("err", err.Error()))
				}
			}
		}
	}()
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
