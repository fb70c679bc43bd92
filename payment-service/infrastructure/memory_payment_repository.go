package infrastructure

import (
	"context"
	"sync"

	"github.com/ordersaga/choreography/payment-service/domain"
)

var _ domain.PaymentRepository = (*MemoryPaymentRepository)(nil)

// MemoryPaymentRepository keeps payments keyed by order and transaction
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]domain.Payment
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{payments: make(map[string]domain.Payment)}
}

func (r *MemoryPaymentRepository) ExistsByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.payments[paymentKey(orderID, transactionID)]
	return ok, nil
}

func (r *MemoryPaymentRepository) FindByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.payments[paymentKey(orderID, transactionID)]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return &payment, nil
}

// Save inserts or replaces the payment of the pair
func (r *MemoryPaymentRepository) Save(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[paymentKey(payment.OrderID, payment.TransactionID)] = *payment
	return nil
}

func paymentKey(orderID, transactionID string) string {
	return orderID + ":" + transactionID
}
