package telemetry

// Predefined service configurations
var (
	OrderServiceConfig = Config{
		ServiceName:    "order-service",
		ServiceVersion: "1.0.0",
	}

	ProductValidationServiceConfig = Config{
		ServiceName:    "product-validation-service",
		ServiceVersion: "1.0.0",
	}

	PaymentServiceConfig = Config{
		ServiceName:    "payment-service",
		ServiceVersion: "1.0.0",
	}

	InventoryServiceConfig = Config{
		ServiceName:    "inventory-service",
		ServiceVersion: "1.0.0",
	}

	// DefaultConfig is used for services without a predefined configuration
	DefaultConfig = Config{
		ServiceName:    "unknown-service",
		ServiceVersion: "1.0.0",
	}
)

// ConfigForService returns the predefined configuration of a service, or DefaultConfig renamed
func ConfigForService(serviceName string) Config {
	for _, c := range []Config{
		OrderServiceConfig,
		ProductValidationServiceConfig,
		PaymentServiceConfig,
		InventoryServiceConfig,
	} {
		if c.ServiceName == serviceName {
			return c
		}
	}
	c := DefaultConfig
	c.ServiceName = serviceName
	return c
}

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}

// WithVersion sets the service version for a config
func (c Config) WithVersion(version string) Config {
	c.ServiceVersion = version
	return c
}
