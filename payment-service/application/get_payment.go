package application

import (
	"context"

	"github.com/ordersaga/choreography/payment-service/domain"
	"github.com/pkg/errors"
)

var ErrEmptyFilters = errors.New("OrderID and TransactionID must be informed.")

// GetPaymentQuery represents the query to get a payment
type GetPaymentQuery struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// GetPaymentResponse represents the response for getting a payment
type GetPaymentResponse struct {
	PaymentID     string  `json:"paymentId"`
	OrderID       string  `json:"orderId"`
	TransactionID string  `json:"transactionId"`
	TotalItems    int     `json:"totalItems"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// GetPayment use case
type GetPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPayment creates a new GetPayment use case
func NewGetPayment(paymentRepository domain.PaymentRepository) *GetPayment {
	return &GetPayment{
		paymentRepository: paymentRepository,
	}
}

// Execute executes the get payment use case
func (uc *GetPayment) Execute(ctx context.Context, query *GetPaymentQuery) (*GetPaymentResponse, error) {
	if query.OrderID == "" || query.TransactionID == "" {
		return nil, ErrEmptyFilters
	}

	payment, err := uc.paymentRepository.FindByOrderIDAndTransactionID(ctx, query.OrderID, query.TransactionID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return &GetPaymentResponse{
		PaymentID:     payment.ID.String(),
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		TotalItems:    payment.TotalItems,
		TotalAmount:   payment.TotalAmount,
		Status:        string(payment.Status),
		CreatedAt:     payment.Timestamps.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     payment.Timestamps.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
