package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"nextstep/config"
	_ "nextstep/docs" // Swagger docs
	"nextstep/internal/httpserver"
	"nextstep/internal/middleware"
	"nextstep/pkg/gemini"
	"nextstep/pkg/log"
	"nextstep/pkg/scope"
)

// @title       NextStep AI API
// @description AI-powered university recommendations and counseling, built on the Gemini generative API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NextStep AI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping database: ", err)
		return
	}
	logger.Info(ctx, "PostgreSQL connected")

	// 4. Gemini client
	geminiClient, err := gemini.New(gemini.Config{
		APIKey:        cfg.Gemini.APIKey,
		Model:         cfg.Gemini.Model,
		APIURL:        cfg.Gemini.APIURL,
		Timeout:       cfg.Gemini.Timeout,
		RetryAttempts: cfg.Gemini.RetryAttempts,
		RetryDelay:    cfg.Gemini.RetryDelay,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini client ready, model: %s", geminiClient.Model())

	// 5. Auth
	scopeManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		PostgresDB:       db,
		Gemini:           geminiClient,
		ScopeManager:     scopeManager,
		ChatMaxSessions:  cfg.Chat.MaxSessions,
		DetailsCacheSize: cfg.Cache.UniversityDetailsSize,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMinute: cfg.RateLim.RequestsPerMinute,
			Burst:             cfg.RateLim.Burst,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
