package application

import (
	"context"

	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/pkg/errors"
)

var ErrEmptyFilters = errors.New("OrderID and TransactionID must be informed.")

// InventoryResponse represents the availability of one product
type InventoryResponse struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	Available   int    `json:"available"`
	UpdatedAt   string `json:"updatedAt"`
}

// GetInventory use case
type GetInventory struct {
	inventoryRepository      domain.InventoryRepository
	orderInventoryRepository domain.OrderInventoryRepository
}

// NewGetInventory creates a new GetInventory use case
func NewGetInventory(
	inventoryRepository domain.InventoryRepository,
	orderInventoryRepository domain.OrderInventoryRepository,
) *GetInventory {
	return &GetInventory{
		inventoryRepository:      inventoryRepository,
		orderInventoryRepository: orderInventoryRepository,
	}
}

// ByProductCode returns the availability of a product
func (uc *GetInventory) ByProductCode(ctx context.Context, productCode string) (*InventoryResponse, error) {
	inventory, err := uc.inventoryRepository.FindByProductCode(ctx, productCode)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find inventory")
	}

	return &InventoryResponse{
		ID:          inventory.ID.String(),
		ProductCode: inventory.ProductCode,
		Available:   inventory.Available,
		UpdatedAt:   inventory.Timestamps.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// ByOrder returns the order lines recorded for a saga attempt
func (uc *GetInventory) ByOrder(ctx context.Context, orderID, transactionID string) ([]domain.OrderInventory, error) {
	if orderID == "" || transactionID == "" {
		return nil, ErrEmptyFilters
	}

	items, err := uc.orderInventoryRepository.FindByOrderIDAndTransactionID(ctx, orderID, transactionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order inventory")
	}
	return items, nil
}
