package domain

import (
	"context"

	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrInventoryNotFound = errors.New("Inventory not found by informed product.")
	ErrOutOfStock        = errors.New("Product is out of stock.")
)

// Stock is the initial availability seeded on startup
var Stock = map[string]int{
	"COMIC_BOOKS": 10,
	"BOOKS":       2,
	"MOVIES":      5,
	"MUSIC":       9,
}

// Inventory is the available quantity of one product
type Inventory struct {
	ID          models.ID         `json:"id"`
	ProductCode string            `json:"productCode"`
	Available   int               `json:"available"`
	Timestamps  models.Timestamps `json:"timestamps"`
}

func NewInventory(productCode string, available int) *Inventory {
	return &Inventory{
		ID:          models.GenerateUUID(),
		ProductCode: productCode,
		Available:   available,
		Timestamps:  models.NewTimestamps(),
	}
}

// OrderInventory records one order line's effect on an inventory, written before the decrement.
// Applied is set once the decrement went through.
type OrderInventory struct {
	ID            models.ID         `json:"id"`
	OrderID       string            `json:"orderId"`
	TransactionID string            `json:"transactionId"`
	InventoryID   models.ID         `json:"inventoryId"`
	OldQuantity   int               `json:"oldQuantity"`
	OrderQuantity int               `json:"orderQuantity"`
	NewQuantity   int               `json:"newQuantity"`
	Applied       bool              `json:"applied"`
	Timestamps    models.Timestamps `json:"timestamps"`
}

// NewOrderInventory captures the inventory quantity before and after the order line
func NewOrderInventory(orderID, transactionID string, inventory *Inventory, orderQuantity int) OrderInventory {
	return OrderInventory{
		ID:            models.GenerateUUID(),
		OrderID:       orderID,
		TransactionID: transactionID,
		InventoryID:   inventory.ID,
		OldQuantity:   inventory.Available,
		OrderQuantity: orderQuantity,
		NewQuantity:   inventory.Available - orderQuantity,
		Timestamps:    models.NewTimestamps(),
	}
}

// InventoryRepository reads and adjusts availability
type InventoryRepository interface {
	FindByProductCode(ctx context.Context, productCode string) (*Inventory, error)
	// Decrement subtracts every order quantity or none, failing with ErrOutOfStock
	Decrement(ctx context.Context, items []OrderInventory) error
	// Restore gives every order quantity back to its inventory
	Restore(ctx context.Context, items []OrderInventory) error
}

// OrderInventoryRepository stores the order lines of each (orderId, transactionId)
type OrderInventoryRepository interface {
	ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error)
	FindByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) ([]OrderInventory, error)
	SaveAll(ctx context.Context, items []OrderInventory) error
	MarkApplied(ctx context.Context, orderID, transactionID string) error
}

// AppliedOnly keeps the lines whose decrement went through
func AppliedOnly(items []OrderInventory) []OrderInventory {
	applied := make([]OrderInventory, 0, len(items))
	for _, item := range items {
		if item.Applied {
			applied = append(applied, item)
		}
	}
	return applied
}
