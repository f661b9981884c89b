package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salonflow/dialog-server-go/internal/config"
	"github.com/salonflow/dialog-server-go/internal/database"
	"github.com/salonflow/dialog-server-go/internal/handler"
	"github.com/salonflow/dialog-server-go/internal/jobs"
	"github.com/salonflow/dialog-server-go/internal/middleware"
	"github.com/salonflow/dialog-server-go/internal/nlu"
	"github.com/salonflow/dialog-server-go/internal/populartimes"
	"github.com/salonflow/dialog-server-go/internal/ranker"
	"github.com/salonflow/dialog-server-go/internal/redis"
	"github.com/salonflow/dialog-server-go/internal/repository"
	"github.com/salonflow/dialog-server-go/internal/router"
	"github.com/salonflow/dialog-server-go/internal/session"
	"github.com/salonflow/dialog-server-go/internal/template"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setLogLevel(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.PingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()
	log.Info().Msg("database connected")

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	slotRepo := repository.NewSlotRepository(db.DB)
	historyRepo := repository.NewHistoryRepository(db.DB)

	sessionStore := session.NewStore(
		redisClient.Client, cfg.SessionTTL(), cfg.SessionExtension(), cfg.SessionCeiling(),
	)
	templateStore := template.NewStore(cfg.DefaultLanguage)
	popularCache := populartimes.NewCache(redisClient.Client, cfg.PopularCacheTTL())

	popularCfg := populartimes.DefaultConfig()
	popularCfg.Lookback = cfg.PopularLookback()
	popularCfg.MinCount = cfg.PopularMinCount
	analyzer := populartimes.New(historyRepo, popularCache, popularCfg)

	detector := nlu.NewDetector(cfg.NLUBaseURL, cfg.NLUTimeout(), cfg.DefaultLanguage)
	classifier := nlu.NewClassifier(cfg.NLUBaseURL, cfg.NLUTimeout(), cfg.IntentConfidenceThreshold)

	dialogRouter := router.New(
		sessionStore,
		templateStore,
		detector,
		classifier,
		slotRepo,
		ranker.New(ranker.DefaultWeights()),
		analyzer,
		cfg.DefaultLanguage,
	)

	rateLimiter := middleware.NewRedisRateLimiter(redisClient.Client, cfg.RateLimitPerMinute)
	webhookHandler := handler.NewWebhookHandler(dialogRouter, rateLimiter)
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/dialog", func(r chi.Router) {
		r.Mount("/", webhookHandler.Routes())
	})

	sweeper := jobs.NewCacheSweeper(popularCache, historyRepo, config.CacheSweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: 0,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
