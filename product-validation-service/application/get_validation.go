package application

import (
	"context"

	"github.com/ordersaga/choreography/product-validation-service/domain"
	"github.com/pkg/errors"
)

var ErrEmptyFilters = errors.New("OrderID and TransactionID must be informed.")

// GetValidationQuery represents the query to get a validation
type GetValidationQuery struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// GetValidationResponse represents the response for getting a validation
type GetValidationResponse struct {
	ID            string `json:"id"`
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
	Success       bool   `json:"success"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// GetValidation use case
type GetValidation struct {
	validationRepository domain.ValidationRepository
}

// NewGetValidation creates a new GetValidation use case
func NewGetValidation(validationRepository domain.ValidationRepository) *GetValidation {
	return &GetValidation{
		validationRepository: validationRepository,
	}
}

// Execute executes the get validation use case
func (uc *GetValidation) Execute(ctx context.Context, query *GetValidationQuery) (*GetValidationResponse, error) {
	if query.OrderID == "" || query.TransactionID == "" {
		return nil, ErrEmptyFilters
	}

	validation, err := uc.validationRepository.FindByOrderIDAndTransactionID(ctx, query.OrderID, query.TransactionID)
	if err != nil {
		if errors.Is(err, domain.ErrValidationNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find validation")
	}

	return &GetValidationResponse{
		ID:            validation.ID.String(),
		OrderID:       validation.OrderID,
		TransactionID: validation.TransactionID,
		Success:       validation.Success,
		CreatedAt:     validation.Timestamps.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     validation.Timestamps.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
