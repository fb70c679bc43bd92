package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/ordersaga/choreography/payment-service/application"
	"github.com/ordersaga/choreography/payment-service/domain"
	"github.com/ordersaga/choreography/payment-service/handlers"
	"github.com/ordersaga/choreography/payment-service/infrastructure"
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
	PaymentRepository domain.PaymentRepository

	// Saga
	ProcessPayment *application.ProcessPayment
	StepExecutor   *saga.StepExecutor
	Controller     *saga.ExecutionController

	// Use Cases
	GetPayment *application.GetPayment

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

	// Event Handlers
	PaymentEventHandlers *handlers.PaymentEventHandlers

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
		telConfig := telemetry.PaymentServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	switch config.Storage.Driver {
	case sharedconfig.DriverPostgres:
		db, err := sharedinfra.NewPostgresDB(ctx, config.GetDatabaseURL())
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.DB = db

		if err := sharedinfra.Migrate(ctx, db, infrastructure.Migrations...); err != nil {
			deps.Close()
			return nil, err
		}
		deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)
	default:
		deps.UseMemoryRepositories()
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

// UseMemoryRepositories installs in-process repositories
func (d *Dependencies) UseMemoryRepositories() {
	d.PaymentRepository = infrastructure.NewMemoryPaymentRepository()
}

// Wire builds the saga step, use cases and handlers on top of the repositories
func (d *Dependencies) Wire(publisher events.Publisher, locker saga.KeyLocker, logger *zap.Logger) {
	d.Controller = saga.NewExecutionController(saga.OrderFulfillment(), publisher, logger)
	d.ProcessPayment = application.NewProcessPayment(d.PaymentRepository)
	d.StepExecutor = saga.NewStepExecutor(
		d.ProcessPayment,
		saga.NewGuard(d.ProcessPayment.Source(), d.PaymentRepository, locker),
		d.Controller,
		logger,
	)
	d.GetPayment = application.NewGetPayment(d.PaymentRepository)

	d.PaymentHandlers = handlers.NewPaymentHandlers(d.GetPayment)
	d.PaymentEventHandlers = handlers.NewPaymentEventHandlers(d.StepExecutor, logger)
}

// Subscribe starts consuming the service's topics. Deliveries carry the service telemetry.
func (d *Dependencies) Subscribe(ctx context.Context) error {
	handler := telemetry.EventHandler(d.Telemetry, d.PaymentEventHandlers)
	if err := d.Transport.Subscriber.Subscribe(ctx, d.PaymentEventHandlers.Topics(), handler); err != nil {
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
