package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/DUSHIMEDanPaul/ai-rating/internal/config"
	dbRedis "github.com/DUSHIMEDanPaul/ai-rating/internal/db/redis"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/extractor"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/fetcher"
	logpkg "github.com/DUSHIMEDanPaul/ai-rating/internal/logger"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/metrics"
	reviewrepo "github.com/DUSHIMEDanPaul/ai-rating/internal/repository/review"
	chiTransport "github.com/DUSHIMEDanPaul/ai-rating/internal/transport/chi"
	openaiCompletion "github.com/DUSHIMEDanPaul/ai-rating/internal/transport/openai"
	chatuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/chat"
	healthuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/health"
	scrapeuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/scrape"
	searchuc "github.com/DUSHIMEDanPaul/ai-rating/internal/usecase/search"
	"github.com/DUSHIMEDanPaul/ai-rating/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ai-rating API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("completion_model", cfg.Completion.Model),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register service metrics explicitly (no init())
	metrics.RegisterServiceMetrics()

	// Collaborators
	pages := fetcher.New(fetcher.Config{
		APIKey:  cfg.Scraper.APIKey,
		BaseURL: cfg.Scraper.BaseURL,
		Timeout: time.Duration(cfg.Scraper.TimeoutSec) * time.Second,
		Logger:  logger,
	})
	extract := extractor.New()
	completer := openaiCompletion.NewCompleter(&openaiCompletion.Config{
		APIKey:  cfg.Completion.APIKey,
		BaseURL: cfg.Completion.BaseURL,
		Model:   cfg.Completion.Model,
		Logger:  logger,
	})

	// Repository over the append-only review log
	reviews := reviewrepo.New(store)

	if n, err := reviews.Count(ctx); err == nil {
		logger.Info("Review log loaded", zap.Int64("reviews", n))
	}

	// Use case services
	scrapeSvc := scrapeuc.New(pages, extract, reviews, logger)
	searchSvc := searchuc.New(reviews)
	chatSvc := chatuc.New(reviews, completer, logger)
	healthSvc := healthuc.New(store, completer)

	// Create chi server
	server := chiTransport.NewServer(scrapeSvc, searchSvc, chatSvc, healthSvc)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
