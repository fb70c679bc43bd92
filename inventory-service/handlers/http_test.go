package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ordersaga/choreography/inventory-service/application"
	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/ordersaga/choreography/inventory-service/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryHandlers(t *testing.T) {
	ctx := context.Background()
	inventories := infrastructure.NewMemoryInventoryRepository(map[string]int{"BOOKS": 2})
	orderInventories := infrastructure.NewMemoryOrderInventoryRepository()

	books, err := inventories.FindByProductCode(ctx, "BOOKS")
	require.NoError(t, err)
	require.NoError(t, orderInventories.SaveAll(ctx, []domain.OrderInventory{
		domain.NewOrderInventory("order-1", "tx-1", books, 1),
	}))

	r := chi.NewRouter()
	NewInventoryHandlers(application.NewGetInventory(inventories, orderInventories)).RegisterRoutes(r)

	t.Run("product availability", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/BOOKS", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response application.InventoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "BOOKS", response.ProductCode)
		assert.Equal(t, 2, response.Available)
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/GAMES", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Inventory not found by informed product.\n", rec.Body.String())
	})

	t.Run("order lines", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/order?orderId=order-1&transactionId=tx-1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})

	t.Run("order lines without filters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inventory/order?orderId=order-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
