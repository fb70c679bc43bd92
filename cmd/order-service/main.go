package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ordersaga/choreography/order-service/config"
	"github.com/ordersaga/choreography/shared/server"
	"github.com/ordersaga/choreography/shared/telemetry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("order-service stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting service",
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("bus", cfg.Bus.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := config.BuildDependencies(ctx, cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Error("error closing dependencies", zap.Error(err))
		}
	}()

	if err := deps.Subscribe(ctx); err != nil {
		return err
	}

	router := server.NewRouter(deps.Telemetry, logger, deps.OrderHandlers.RegisterRoutes)
	if err := server.Serve(ctx, ":"+cfg.Port, router, logger); err != nil {
		return err
	}

	logger.Info("service stopped", zap.String("service", cfg.ServiceName))
	return nil
}
