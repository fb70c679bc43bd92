package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ordersaga/choreography/payment-service/application"
	"github.com/ordersaga/choreography/payment-service/domain"
	"github.com/ordersaga/choreography/payment-service/infrastructure"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandlers_GetPayment(t *testing.T) {
	repo := infrastructure.NewMemoryPaymentRepository()
	payment := domain.NewPayment("order-1", "tx-1", []events.OrderProducts{
		{Product: events.Product{Code: "BOOKS", UnitValue: 10}, Quantity: 2},
	})
	payment.Complete()
	require.NoError(t, repo.Save(context.Background(), payment))

	r := chi.NewRouter()
	NewPaymentHandlers(application.NewGetPayment(repo)).RegisterRoutes(r)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payment?orderId=order-1&transactionId=tx-1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response application.GetPaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, payment.ID.String(), response.PaymentID)
		assert.Equal(t, "SUCCESS", response.Status)
		assert.Equal(t, 20.0, response.TotalAmount)
	})

	t.Run("missing filters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payment", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payment?orderId=order-2&transactionId=tx-1", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Payment not found by orderID and transactionID\n", rec.Body.String())
	})
}
