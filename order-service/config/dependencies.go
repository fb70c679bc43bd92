package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/ordersaga/choreography/order-service/application"
	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/order-service/handlers"
	"github.com/ordersaga/choreography/order-service/infrastructure"
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
	OrderRepository domain.OrderRepository
	EventRepository domain.EventRepository

	// Saga
	Controller *saga.ExecutionController

	// Use Cases
	CreateOrder  *application.CreateOrder
	NotifyEnding *application.NotifyEnding
	GetOrder     *application.GetOrder
	GetEvents    *application.GetEvents

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

	// Event Handlers
	OrderEventHandlers *handlers.OrderEventHandlers

	// Infrastructure
	Transport *sharedinfra.Transport

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	if config.Telemetry.Enabled {
		telConfig := telemetry.OrderServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
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

	deps.Wire(transport.Publisher, logger)

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

	d.OrderRepository = infrastructure.NewPostgresOrderRepository(db)
	d.EventRepository = infrastructure.NewPostgresEventRepository(db)
	return nil
}

// UseMemoryRepositories installs in-process order and audit stores
func (d *Dependencies) UseMemoryRepositories() {
	d.OrderRepository = infrastructure.NewMemoryOrderRepository()
	d.EventRepository = infrastructure.NewMemoryEventRepository()
}

// Wire builds the use cases and handlers on top of the repositories.
// The order service starts and ends sagas but runs no step, so it needs no key locker.
func (d *Dependencies) Wire(publisher events.Publisher, logger *zap.Logger) {
	d.Controller = saga.NewExecutionController(saga.OrderFulfillment(), publisher, logger)
	d.CreateOrder = application.NewCreateOrder(d.OrderRepository, d.EventRepository, d.Controller, logger)
	d.NotifyEnding = application.NewNotifyEnding(d.EventRepository, logger)
	d.GetOrder = application.NewGetOrder(d.OrderRepository)
	d.GetEvents = application.NewGetEvents(d.EventRepository)

	d.OrderHandlers = handlers.NewOrderHandlers(d.CreateOrder, d.GetOrder, d.GetEvents)
	d.OrderEventHandlers = handlers.NewOrderEventHandlers(d.NotifyEnding, logger)
}

// Subscribe starts consuming the service's topics. Deliveries carry the service telemetry.
func (d *Dependencies) Subscribe(ctx context.Context) error {
	handler := telemetry.EventHandler(d.Telemetry, d.OrderEventHandlers)
	if err := d.Transport.Subscriber.Subscribe(ctx, d.OrderEventHandlers.Topics(), handler); err != nil {
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
