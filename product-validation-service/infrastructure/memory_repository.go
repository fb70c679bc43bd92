package infrastructure

import (
	"context"
	"sync"

	"github.com/ordersaga/choreography/product-validation-service/domain"
)

var (
	_ domain.ProductRepository    = (*MemoryProductRepository)(nil)
	_ domain.ValidationRepository = (*MemoryValidationRepository)(nil)
)

// MemoryProductRepository is an in-process product catalog
type MemoryProductRepository struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}

func NewMemoryProductRepository(codes ...string) *MemoryProductRepository {
	r := &MemoryProductRepository{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		r.codes[code] = struct{}{}
	}
	return r
}

func (r *MemoryProductRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codes[code]
	return ok, nil
}

// MemoryValidationRepository keeps validations keyed by order and transaction
type MemoryValidationRepository struct {
	mu          sync.RWMutex
	validations map[string]domain.Validation
}

func NewMemoryValidationRepository() *MemoryValidationRepository {
	return &MemoryValidationRepository{validations: make(map[string]domain.Validation)}
}

func (r *MemoryValidationRepository) ExistsByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.validations[validationKey(orderID, transactionID)]
	return ok, nil
}

func (r *MemoryValidationRepository) FindByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) (*domain.Validation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	validation, ok := r.validations[validationKey(orderID, transactionID)]
	if !ok {
		return nil, domain.ErrValidationNotFound
	}
	return &validation, nil
}

// Save inserts or replaces the validation of the pair
func (r *MemoryValidationRepository) Save(_ context.Context, validation *domain.Validation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validations[validationKey(validation.OrderID, validation.TransactionID)] = *validation
	return nil
}

func validationKey(orderID, transactionID string) string {
	return orderID + ":" + transactionID
}
