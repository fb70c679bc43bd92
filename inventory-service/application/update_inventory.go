package application

import (
	"context"

	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
)

var _ saga.Participant = (*UpdateInventory)(nil)

var inventoryMessages = saga.Messages{
	Success:               "Inventory updated successfully!",
	FailurePrefix:         "Fail to update inventory: ",
	Duplicate:             "There's another transactionId for this orderInventory",
	Rollback:              "Rollback executed on inventory.",
	RollbackFailurePrefix: "Rollback not executed for inventory: ",
}

// UpdateInventory is the inventory step of the saga
type UpdateInventory struct {
	inventoryRepository      domain.InventoryRepository
	orderInventoryRepository domain.OrderInventoryRepository
}

// NewUpdateInventory creates a new UpdateInventory participant
func NewUpdateInventory(
	inventoryRepository domain.InventoryRepository,
	orderInventoryRepository domain.OrderInventoryRepository,
) *UpdateInventory {
	return &UpdateInventory{
		inventoryRepository:      inventoryRepository,
		orderInventoryRepository: orderInventoryRepository,
	}
}

func (uc *UpdateInventory) Source() string {
	return events.InventorySource
}

func (uc *UpdateInventory) Messages() saga.Messages {
	return inventoryMessages
}

// Apply records every order line against its inventory, then decrements them together
func (uc *UpdateInventory) Apply(ctx context.Context, event *events.Event) error {
	items := make([]domain.OrderInventory, 0, len(event.Payload.Products))
	for _, product := range event.Payload.Products {
		inventory, err := uc.inventoryRepository.FindByProductCode(ctx, product.Product.Code)
		if err != nil {
			if errors.Is(err, domain.ErrInventoryNotFound) {
				return saga.DomainRuleViolation(err.Error())
			}
			return errors.Wrap(err, "failed to find inventory")
		}
		items = append(items, domain.NewOrderInventory(event.OrderID, event.TransactionID, inventory, product.Quantity))
	}

	if err := uc.orderInventoryRepository.SaveAll(ctx, items); err != nil {
		return errors.Wrap(err, "failed to save order inventory")
	}

	if err := uc.inventoryRepository.Decrement(ctx, items); err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			return saga.DomainRuleViolation(domain.ErrOutOfStock.Error())
		}
		return errors.Wrap(err, "failed to update inventory")
	}

	if err := uc.orderInventoryRepository.MarkApplied(ctx, event.OrderID, event.TransactionID); err != nil {
		if restoreErr := uc.inventoryRepository.Restore(ctx, items); restoreErr != nil {
			return errors.Wrapf(err, "failed to mark order inventory applied (restore also failed: %v)", restoreErr)
		}
		return errors.Wrap(err, "failed to mark order inventory applied")
	}
	return nil
}

// Compensate gives back the quantities Apply took. Lines that were never decremented are left alone.
func (uc *UpdateInventory) Compensate(ctx context.Context, event *events.Event) error {
	items, err := uc.orderInventoryRepository.FindByOrderIDAndTransactionID(ctx, event.OrderID, event.TransactionID)
	if err != nil {
		return errors.Wrap(err, "failed to find order inventory")
	}
	items = domain.AppliedOnly(items)
	if len(items) == 0 {
		return nil
	}

	if err := uc.inventoryRepository.Restore(ctx, items); err != nil {
		return errors.Wrap(err, "failed to restore inventory")
	}
	return nil
}
