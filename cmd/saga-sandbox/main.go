package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	sharedconfig "github.com/ordersaga/choreography/shared/config"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/server"
	"github.com/ordersaga/choreography/shared/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const serviceName = "saga-sandbox"

var sampleOrder = []events.OrderProducts{
	{Product: events.Product{Code: "COMIC_BOOKS", UnitValue: 15.5}, Quantity: 3},
	{Product: events.Product{Code: "BOOKS", UnitValue: 9.9}, Quantity: 2},
}

func main() {
	cfg, err := sharedconfig.ReadConfig(serviceName, "8080")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sb, err := newSandbox(ctx, logger)
	if err != nil {
		logger.Fatal("failed to build sandbox", zap.Error(err))
	}
	defer sb.Close()

	gr, ctx := errgroup.WithContext(ctx)

	gr.Go(func() error {
		return server.Serve(ctx, ":"+cfg.Port, server.NewRouter(nil, logger, sb.routes), logger)
	})

	gr.Go(func() error {
		final, err := sb.placeOrder(ctx, sampleOrder)
		if err != nil {
			return err
		}
		for _, entry := range final.History() {
			logger.Info("saga history",
				zap.String("transaction_id", final.TransactionID),
				zap.String("source", entry.Source),
				zap.String("status", entry.Status.String()),
				zap.String("message", entry.Message),
			)
		}
		return nil
	})

	if err := gr.Wait(); err != nil {
		logger.Error("sandbox stopped with error", zap.Error(err))
	}
}
