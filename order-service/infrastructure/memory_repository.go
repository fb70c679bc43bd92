package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/models"
)

var (
	_ domain.OrderRepository = (*MemoryOrderRepository)(nil)
	_ domain.EventRepository = (*MemoryEventRepository)(nil)
)

// MemoryOrderRepository keeps orders in process
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) Save(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &order, nil
}

// MemoryEventRepository keeps one version per event id; Save replaces it
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[models.ID]*events.Event
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{events: make(map[models.ID]*events.Event)}
}

func (r *MemoryEventRepository) Save(_ context.Context, event *events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event.Clone()
	return nil
}

func (r *MemoryEventRepository) FindTopByOrderID(_ context.Context, orderID string) (*events.Event, error) {
	return r.top(func(e *events.Event) bool { return e.OrderID == orderID })
}

func (r *MemoryEventRepository) FindTopByTransactionID(_ context.Context, transactionID string) (*events.Event, error) {
	return r.top(func(e *events.Event) bool { return e.TransactionID == transactionID })
}

func (r *MemoryEventRepository) FindAll(_ context.Context) ([]*events.Event, error) {
	return r.sorted(func(*events.Event) bool { return true }), nil
}

func (r *MemoryEventRepository) top(match func(*events.Event) bool) (*events.Event, error) {
	found := r.sorted(match)
	if len(found) == 0 {
		return nil, domain.ErrEventNotFound
	}
	return found[0], nil
}

// sorted returns clones of the matching events, most recent first
func (r *MemoryEventRepository) sorted(match func(*events.Event) bool) []*events.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]*events.Event, 0, len(r.events))
	for _, event := range r.events {
		if match(event) {
			found = append(found, event.Clone())
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})
	return found
}
