package config

import (
	"context"
	"testing"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	sharedinfra "github.com/ordersaga/choreography/shared/infrastructure"
	"github.com/ordersaga/choreography/shared/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	metricSDK "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDependencies_SubscribeTagsStepMetricsWithService(t *testing.T) {
	reader := metricSDK.NewManualReader()
	otel.SetMeterProvider(metricSDK.NewMeterProvider(metricSDK.WithReader(reader)))

	bus := sharedinfra.NewMemoryBus(nil)
	deps := &Dependencies{
		Transport: &sharedinfra.Transport{Publisher: bus, Subscriber: bus},
		Telemetry: telemetry.NewTelemetry(telemetry.PaymentServiceConfig),
	}
	deps.UseMemoryRepositories()
	deps.Wire(bus, nil, nil)
	defer bus.Close()

	ctx := context.Background()
	require.NoError(t, deps.Subscribe(ctx))

	event := events.NewEvent(events.Order{
		ID:            "order-1",
		TransactionID: "1772366400000_tx",
		Products: []events.OrderProducts{
			{Product: events.Product{Code: "BOOKS", UnitValue: 20}, Quantity: 1},
		},
	}, events.OrderSource, "Saga started!", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, bus.Publish(ctx, events.ProductValidationSuccessTopic, event))

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, bus.WaitIdle(waitCtx))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	var services []string
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "saga_steps_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				service, _ := dp.Attributes.Value("service")
				services = append(services, service.AsString())
			}
		}
	}
	assert.Equal(t, []string{"payment-service"}, services)
}
