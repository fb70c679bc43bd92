package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/ordersaga/choreography/inventory-service/application"
	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/ordersaga/choreography/inventory-service/handlers"
	"github.com/ordersaga/choreography/inventory-service/infrastructure"
	sharedconfig "github.com/ordersaga/choreography/shared/config"
	"github.com/ordersaga/choreography/shared/events"
	sharedinfra "github.com/ordersaga/choreography/shared/infrastructure"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/ordersaga/choreography/shared/telemetry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	InventoryRepository      domain.InventoryRepository
	OrderInventoryRepository domain.OrderInventoryRepository

	// Saga
	UpdateInventory *application.UpdateInventory
	StepExecutor    *saga.StepExecutor
	Controller      *saga.ExecutionController

	// Use Cases
	GetInventory *application.GetInventory

	// HTTP Handlers
	InventoryHandlers *handlers.InventoryHandlers

	// Event Handlers
	InventoryEventHandlers *handlers.InventoryEventHandlers

	// Infrastructure
	Transport   *sharedinfra.Transport
	closeLocker func() error

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	if config.Telemetry.Enabled {
		telConfig := telemetry.InventoryServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	if err := deps.buildRepositories(ctx, config); err != nil {
		deps.Close()
		return nil, err
	}

	transport, err := sharedinfra.NewTransport(ctx, config, logger)
	if err != nil {
		deps.Close()
		return nil, errors.Wrap(err, "failed to create transport")
	}
	deps.Transport = transport

	locker, closeLocker, err := sharedinfra.NewKeyLocker(ctx, config, logger)
	if err != nil {
		deps.Close()
		return nil, errors.Wrap(err, "failed to create key locker")
	}
	deps.closeLocker = closeLocker

	deps.Wire(transport.Publisher, locker, logger)

	return deps, nil
}

func (d *Dependencies) buildRepositories(ctx context.Context, config *Config) error {
	if config.Storage.Driver != sharedconfig.DriverPostgres {
		d.UseMemoryRepositories()
		return nil
	}

	db, err := sharedinfra.NewPostgresDB(ctx, config.GetDatabaseURL())
	if err != nil {
		return err
	}
	d.DB = db

	if err := sharedinfra.Migrate(ctx, db, infrastructure.Migrations...); err != nil {
		return err
	}

	inventories := infrastructure.NewPostgresInventoryRepository(db)
	if err := inventories.Seed(ctx, domain.Stock); err != nil {
		return err
	}
	d.InventoryRepository = inventories
	d.OrderInventoryRepository = infrastructure.NewPostgresOrderInventoryRepository(db)
	return nil
}

// UseMemoryRepositories installs in-process repositories seeded with the initial stock
func (d *Dependencies) UseMemoryRepositories() {
	d.InventoryRepository = infrastructure.NewMemoryInventoryRepository(domain.Stock)
	d.OrderInventoryRepository = infrastructure.NewMemoryOrderInventoryRepository()
}

// Wire builds the saga step, use cases and handlers on top of the repositories
func (d *Dependencies) Wire(publisher events.Publisher, locker saga.KeyLocker, logger *zap.Logger) {
	d.Controller = saga.NewExecutionController(saga.OrderFulfillment(), publisher, logger)
	d.UpdateInventory = application.NewUpdateInventory(d.InventoryRepository, d.OrderInventoryRepository)
	d.StepExecutor = saga.NewStepExecutor(
		d.UpdateInventory,
		saga.NewGuard(d.UpdateInventory.Source(), d.OrderInventoryRepository, locker),
		d.Controller,
		logger,
	)
	d.GetInventory = application.NewGetInventory(d.InventoryRepository, d.OrderInventoryRepository)

	d.InventoryHandlers = handlers.NewInventoryHandlers(d.GetInventory)
	d.InventoryEventHandlers = handlers.NewInventoryEventHandlers(d.StepExecutor, logger)
}

// Subscribe starts consuming the service's topics. Deliveries carry the service telemetry.
func (d *Dependencies) Subscribe(ctx context.Context) error {
	handler := telemetry.EventHandler(d.Telemetry, d.InventoryEventHandlers)
	if err := d.Transport.Subscriber.Subscribe(ctx, d.InventoryEventHandlers.Topics(), handler); err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}
	return nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Transport != nil {
		if err := d.Transport.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close transport"))
		}
	}

	if d.closeLocker != nil {
		if err := d.closeLocker(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close key locker"))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close database"))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return errors.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
