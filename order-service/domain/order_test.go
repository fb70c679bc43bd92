package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		products      []events.OrderProducts
		expectedError error
		expectedTotal float64
		expectedItems int
	}{
		{
			name: "totals are computed",
			products: []events.OrderProducts{
				{Product: events.Product{Code: "BOOKS", UnitValue: 12.5}, Quantity: 2},
				{Product: events.Product{Code: "MUSIC", UnitValue: 3}, Quantity: 1},
			},
			expectedTotal: 28,
			expectedItems: 3,
		},
		{
			name:          "no products",
			expectedError: ErrNoProducts,
		},
		{
			name:          "line without code",
			products:      []events.OrderProducts{{Product: events.Product{UnitValue: 1}, Quantity: 1}},
			expectedError: ErrInvalidLine,
		},
		{
			name:          "line without quantity",
			products:      []events.OrderProducts{{Product: events.Product{Code: "BOOKS", UnitValue: 1}}},
			expectedError: ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(tt.products, now)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.True(t, strings.HasPrefix(order.TransactionID, "1772366400000_"))
			assert.Equal(t, tt.expectedTotal, order.TotalAmount)
			assert.Equal(t, tt.expectedItems, order.TotalItems)
			assert.Equal(t, now, order.CreatedAt)

			payload := order.Payload()
			assert.Equal(t, order.ID, payload.ID)
			assert.Equal(t, order.TransactionID, payload.TransactionID)
			assert.Equal(t, tt.products, payload.Products)
		})
	}
}
