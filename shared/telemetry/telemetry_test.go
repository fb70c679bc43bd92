package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	metricSDK "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		env           string
		expectedError string
	}{
		{name: "production", level: "info", env: "production"},
		{name: "local", level: "debug", env: "local"},
		{name: "invalid level", level: "loud", env: "local", expectedError: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.env)
			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigForService(t *testing.T) {
	assert.Equal(t, InventoryServiceConfig, ConfigForService("inventory-service"))

	custom := ConfigForService("shipping-service")
	assert.Equal(t, "shipping-service", custom.ServiceName)
	assert.Equal(t, DefaultConfig.ServiceVersion, custom.ServiceVersion)

	assert.Equal(t, "collector:4318", OrderServiceConfig.WithOTLPEndpoint("collector:4318").OTLPEndpoint)
}

func TestContextTelemetry(t *testing.T) {
	assert.Equal(t, "unknown", GetServiceName(context.Background()))

	ctx := WithTelemetry(context.Background(), NewTelemetry(PaymentServiceConfig))
	assert.Equal(t, "payment-service", GetServiceName(ctx))
	assert.NotNil(t, FromContext(ctx))
}

func TestMiddleware(t *testing.T) {
	tel := NewTelemetry(OrderServiceConfig)
	router := chi.NewRouter()
	router.Use(Middleware(tel, nil))

	var serviceName string
	router.Get("/api/order/{id}", func(w http.ResponseWriter, r *http.Request) {
		serviceName = GetServiceName(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/order/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "order-service", serviceName)
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(201))
	assert.Equal(t, "4xx", statusClass(404))
	assert.Equal(t, "5xx", statusClass(503))
	assert.Equal(t, "unknown", statusClass(42))
}

func TestRecordSagaMetrics(t *testing.T) {
	reader := metricSDK.NewManualReader()
	provider := metricSDK.NewMeterProvider(metricSDK.WithReader(reader))
	otel.SetMeterProvider(provider)

	ctx := WithTelemetry(context.Background(), NewTelemetry(InventoryServiceConfig))
	RecordSagaStep(ctx, "INVENTORY_SERVICE", "forward", "SUCCESS", 20*time.Millisecond)
	RecordSagaStep(ctx, "INVENTORY_SERVICE", "compensation", "FAIL", 5*time.Millisecond)
	RecordSagaEnding(ctx, "FAIL")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["saga_steps_total"])
	assert.True(t, names["saga_step_duration_seconds"])
	assert.True(t, names["saga_completed_total"])
}

func TestEventHandler(t *testing.T) {
	var serviceName string
	handler := events.HandlerFunc(func(ctx context.Context, _ events.Topic, _ *events.Event) error {
		serviceName = GetServiceName(ctx)
		return nil
	})

	require.NoError(t, EventHandler(NewTelemetry(PaymentServiceConfig), handler).Handle(context.Background(), events.PaymentFailTopic, nil))
	assert.Equal(t, "payment-service", serviceName)

	require.NoError(t, EventHandler(nil, handler).Handle(context.Background(), events.PaymentFailTopic, nil))
	assert.Equal(t, "unknown", serviceName)
}
