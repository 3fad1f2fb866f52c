package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mgnrega-dash/internal/bootstrap"
	"mgnrega-dash/internal/config"
	"mgnrega-dash/internal/logger"
	"mgnrega-dash/internal/routes"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logr := logger.New(cfg)
	defer logr.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	st, err := bootstrap.OpenStore(startCtx, cfg, logr.Logger)
	if err != nil {
		cancelStart()
		logr.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.MigrateOnStart {
		if err := bootstrap.Migrate(startCtx, st, logr.Logger); err != nil {
			logr.Error("migrations failed, serving existing schema", zap.Error(err))
		}
	}
	if cfg.SeedOnStart {
		res, err := bootstrap.Seed(startCtx, st, logr.Logger)
		if err != nil {
			logr.Error("seeding failed", zap.Error(err))
		} else {
			logr.Info("seed finished",
				zap.Int("districts", res.DistrictsInserted),
				zap.Int("metrics", res.MetricsInserted),
				zap.Bool("skipped", res.Skipped))
		}
	}
	cancelStart()

	r := routes.NewRouter(st, cfg, logr)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("server started", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logr.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := st.Close(); err != nil {
		logr.Warn("failed to close store", zap.Error(err))
	}
	logr.Info("server exited gracefully")
}
