package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Montyshaa/Sumeris/internal/auth"
	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/middleware"
	"github.com/Montyshaa/Sumeris/internal/player"
	"github.com/Montyshaa/Sumeris/internal/server"
	"github.com/Montyshaa/Sumeris/internal/shared/config"
	"github.com/Montyshaa/Sumeris/internal/shared/database"
	"github.com/Montyshaa/Sumeris/internal/shared/logger"
	"github.com/Montyshaa/Sumeris/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	cfg := config.GlobalConfig

	logger.Init()
	slog.Info("Starting Sumeris server", "environment", cfg.Server.Environment)

	db, err := database.Connect()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := redis.Connect()
	if err != nil {
		slog.Warn("Redis unavailable, continuing without save-state cache", "error", err)
		cache = nil
	}
	defer func() {
		if err := cache.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}()

	cat, err := catalog.Load(cfg.Game.CatalogDir)
	if err != nil {
		slog.Error("Failed to load game catalog", "error", err)
		os.Exit(1)
	}

	playerRepo := player.NewRepository(db.DB, slog.Default())
	playerService := player.NewService(playerRepo, slog.Default())

	hub := game.NewHub(slog.Default())
	gameRepo := game.NewRepository(db, cache, slog.Default())
	gameService := game.NewService(gameRepo, cat, game.SystemClock(), hub, slog.Default())

	googleProvider := auth.NewGoogleProvider()
	googleConfigured := cfg.GoogleOAuthConfigured()
	if !googleConfigured {
		slog.Info("Google OAuth not configured, sign-in limited to join codes")
	}

	routes := server.NewRoutes(db, cache, playerService, gameService, hub, googleProvider, googleConfigured, slog.Default())
	mux := routes.Setup()

	corsMiddleware := middleware.NewCORS()
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
	})

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tickInterval := time.Duration(float64(cfg.Game.TickInterval) / cfg.Game.TimeAcceleration)
	go gameService.RunTicker(ctx, tickInterval)

	go func() {
		slog.Info("Sumeris server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	slog.Info("Server stopped")
}
