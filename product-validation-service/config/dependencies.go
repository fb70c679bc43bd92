package config

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/ordersaga/choreography/product-validation-service/application"
	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/ordersaga/choreography/product-validation-service/handlers"
	"github.com/ordersaga/choreography/product-validation-service/infrastructure"
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
	ProductRepository    domain.ProductRepository
	ValidationRepository domain.ValidationRepository

	// Saga
	ValidateProducts *application.ValidateProducts
	StepExecutor     *saga.StepExecutor
	Controller       *saga.ExecutionController

	// Use Cases
	GetValidation *application.GetValidation

	// HTTP Handlers
	ValidationHandlers *handlers.ValidationHandlers

	// Event Handlers
	ValidationEventHandlers *handlers.ValidationEventHandlers

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
		telConfig := telemetry.ProductValidationServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
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

// Wire builds the saga step, use cases and handlers on top of the repositories
func (d *Dependencies) Wire(publisher events.Publisher, locker saga.KeyLocker, logger *zap.Logger) {
	d.Controller = saga.NewExecutionController(saga.OrderFulfillment(), publisher, logger)
	d.ValidateProducts = application.NewValidateProducts(d.ProductRepository, d.ValidationRepository)
	d.StepExecutor = saga.NewStepExecutor(
		d.ValidateProducts,
		saga.NewGuard(d.ValidateProducts.Source(), d.ValidationRepository, locker),
		d.Controller,
		logger,
	)
	d.GetValidation = application.NewGetValidation(d.ValidationRepository)

	d.ValidationHandlers = handlers.NewValidationHandlers(d.GetValidation)
	d.ValidationEventHandlers = handlers.NewValidationEventHandlers(d.StepExecutor, logger)
}

func (d *Dependencies) buildRepositories(ctx context.Context, config *Config) error {
	switch config.Storage.Driver {
	case sharedconfig.DriverPostgres:
		db, err := sharedinfra.NewPostgresDB(ctx, config.GetDatabaseURL())
		if err != nil {
			return err
		}
		d.DB = db

		if err := sharedinfra.Migrate(ctx, db, infrastructure.Migrations...); err != nil {
			return err
		}
		products := infrastructure.NewPostgresProductRepository(db)
		if err := products.Seed(ctx, domain.Catalog); err != nil {
			return err
		}
		d.ProductRepository = products
		d.ValidationRepository = infrastructure.NewPostgresValidationRepository(db)
	default:
		d.UseMemoryRepositories()
	}
	return nil
}

// UseMemoryRepositories installs in-process repositories seeded with the catalog
func (d *Dependencies) UseMemoryRepositories() {
	d.ProductRepository = infrastructure.NewMemoryProductRepository(domain.Catalog...)
	d.ValidationRepository = infrastructure.NewMemoryValidationRepository()
}

// Subscribe starts consuming the service's topics. Deliveries carry the service telemetry.
func (d *Dependencies) Subscribe(ctx context.Context) error {
	handler := telemetry.EventHandler(d.Telemetry, d.ValidationEventHandlers)
	if err := d.Transport.Subscriber.Subscribe(ctx, d.ValidationEventHandlers.Topics(), handler); err != nil {
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
