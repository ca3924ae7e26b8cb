package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/roomly/booking-backend/internal/app"
	"github.com/roomly/booking-backend/internal/config"
	"github.com/roomly/booking-backend/internal/db"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.IsProduction)
	defer logger.Sync()

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Init components
	container := app.NewContainer(app.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		DBPool:            pool,
		JWTSecret:         cfg.JWTSecret,
		JWTTTL:            cfg.JWTAccessTokenTTL,
		BcryptCost:        cfg.BcryptCost,
		RecheckPastOnEdit: cfg.RecheckPastOnEdit,
		Logger:            logger,
	})
	defer container.Close()

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

func newLogger(isProduction bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if isProduction {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return logger
}
