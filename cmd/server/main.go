package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lexai-legal/lexai-backend/internal/di"
	"github.com/lexai-legal/lexai-backend/internal/server"
	"github.com/lexai-legal/lexai-backend/pkg/config"
	"github.com/lexai-legal/lexai-backend/pkg/database"
	"github.com/lexai-legal/lexai-backend/pkg/logger"
	"github.com/lexai-legal/lexai-backend/pkg/telemetry"
	"github.com/lexai-legal/lexai-backend/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.Logger.Level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  cfg.Logger.OutputPath,
	}); err != nil {
		logger.Fatal("failed to initialize logger", zap.Error(err))
	}
	log := logger.Get()
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	_, err = telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	})
	if err != nil {
		log.Fatal("failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down telemetry", zap.Error(err))
		}
	}()

	db, err := database.NewMongoDB(ctx, &database.MongoConfig{
		URI:            cfg.MongoDB.URI,
		Database:       cfg.MongoDB.Database,
		ConnectTimeout: cfg.MongoDB.ConnectTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Error("failed to close MongoDB connection", zap.Error(err))
		}
	}()

	issuer := token.NewIssuer(&token.Config{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TokenTTL,
		Issuer: cfg.JWT.Issuer,
	})

	container := di.NewContainer(&di.ContainerConfig{
		DB:          db,
		Tokens:      issuer,
		ServiceName: cfg.App.Name,
	})

	srv, err := server.New(cfg, log, container)
	if err != nil {
		log.Fatal("failed to create server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
