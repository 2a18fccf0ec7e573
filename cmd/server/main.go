package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"reviewpulse/internal/config"
	"reviewpulse/internal/repository"
	"reviewpulse/internal/sentiment"
	"reviewpulse/internal/server"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yml", "Path to the YAML config file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Missing artifacts abort startup; there is no degraded mode.
	model, err := sentiment.LoadModel(cfg.Model.ClassifierPath, cfg.Model.VectorizerPath, logger)
	if err != nil {
		logger.Fatal("Failed to load sentiment model", zap.Error(err))
	}

	db, err := repository.NewSQLiteDB(cfg.Database.Path, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repository.MigrateDB(db, logger)

	s := server.NewServer(db, model, cfg, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: s.Handler(),
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Application stopped.")
}
