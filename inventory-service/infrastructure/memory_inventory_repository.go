package infrastructure

import (
	"context"
	"sync"

	"github.com/ordersaga/choreography/inventory-service/domain"
	"github.com/ordersaga/choreography/shared/models"
)

var (
	_ domain.InventoryRepository      = (*MemoryInventoryRepository)(nil)
	_ domain.OrderInventoryRepository = (*MemoryOrderInventoryRepository)(nil)
)

// MemoryInventoryRepository keeps inventories in process; Decrement is atomic under its lock
type MemoryInventoryRepository struct {
	mu     sync.Mutex
	byCode map[string]*domain.Inventory
	byID   map[models.ID]*domain.Inventory
}

// NewMemoryInventoryRepository creates a repository seeded with the given stock
func NewMemoryInventoryRepository(stock map[string]int) *MemoryInventoryRepository {
	r := &MemoryInventoryRepository{
		byCode: make(map[string]*domain.Inventory, len(stock)),
		byID:   make(map[models.ID]*domain.Inventory, len(stock)),
	}
	for code, available := range stock {
		inventory := domain.NewInventory(code, available)
		r.byCode[code] = inventory
		r.byID[inventory.ID] = inventory
	}
	return r
}

func (r *MemoryInventoryRepository) FindByProductCode(_ context.Context, productCode string) (*domain.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inventory, ok := r.byCode[productCode]
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	found := *inventory
	return &found, nil
}

func (r *MemoryInventoryRepository) Decrement(_ context.Context, items []domain.OrderInventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	required := make(map[models.ID]int, len(items))
	for _, item := range items {
		if _, ok := r.byID[item.InventoryID]; !ok {
			return domain.ErrInventoryNotFound
		}
		required[item.InventoryID] += item.OrderQuantity
	}
	for id, quantity := range required {
		if quantity > r.byID[id].Available {
			return domain.ErrOutOfStock
		}
	}

	for id, quantity := range required {
		inventory := r.byID[id]
		inventory.Available -= quantity
		inventory.Timestamps = inventory.Timestamps.Update()
	}
	return nil
}

func (r *MemoryInventoryRepository) Restore(_ context.Context, items []domain.OrderInventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		inventory, ok := r.byID[item.InventoryID]
		if !ok {
			return domain.ErrInventoryNotFound
		}
		inventory.Available += item.OrderQuantity
		inventory.Timestamps = inventory.Timestamps.Update()
	}
	return nil
}

// MemoryOrderInventoryRepository keeps order lines keyed by order and transaction
type MemoryOrderInventoryRepository struct {
	mu    sync.RWMutex
	items map[string][]domain.OrderInventory
}

func NewMemoryOrderInventoryRepository() *MemoryOrderInventoryRepository {
	return &MemoryOrderInventoryRepository{items: make(map[string][]domain.OrderInventory)}
}

func (r *MemoryOrderInventoryRepository) ExistsByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[orderInventoryKey(orderID, transactionID)]
	return ok, nil
}

func (r *MemoryOrderInventoryRepository) FindByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) ([]domain.OrderInventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.items[orderInventoryKey(orderID, transactionID)]
	return append([]domain.OrderInventory(nil), items...), nil
}

func (r *MemoryOrderInventoryRepository) SaveAll(_ context.Context, items []domain.OrderInventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		key := orderInventoryKey(item.OrderID, item.TransactionID)
		r.items[key] = append(r.items[key], item)
	}
	return nil
}

func (r *MemoryOrderInventoryRepository) MarkApplied(_ context.Context, orderID, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[orderInventoryKey(orderID, transactionID)]
	for i := range items {
		items[i].Applied = true
		items[i].Timestamps = items[i].Timestamps.Update()
	}
	return nil
}

func orderInventoryKey(orderID, transactionID string) string {
	return orderID + ":" + transactionID
}
