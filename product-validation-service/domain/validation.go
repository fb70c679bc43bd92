package domain

import (
	"context"

	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var ErrValidationNotFound = errors.New("validation not found")

// Catalog is the product catalog seeded on startup
var Catalog = []string{"COMIC_BOOKS", "BOOKS", "MOVIES", "MUSIC"}

// Validation records the outcome of validating one order's products within a saga attempt
type Validation struct {
	ID            models.ID         `json:"id"`
	OrderID       string            `json:"orderId"`
	TransactionID string            `json:"transactionId"`
	Success       bool              `json:"success"`
	Timestamps    models.Timestamps `json:"timestamps"`
}

// NewValidation creates a validation record for the pair
func NewValidation(orderID, transactionID string, success bool) *Validation {
	return &Validation{
		ID:            models.GenerateUUID(),
		OrderID:       orderID,
		TransactionID: transactionID,
		Success:       success,
		Timestamps:    models.NewTimestamps(),
	}
}

// Fail marks the validation as rolled back
func (v *Validation) Fail() {
	v.Success = false
	v.Timestamps = v.Timestamps.Update()
}

// ProductRepository answers catalog lookups
type ProductRepository interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// ValidationRepository stores one validation per (orderId, transactionId)
type ValidationRepository interface {
	ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error)
	FindByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (*Validation, error)
	Save(ctx context.Context, validation *Validation) error
}
