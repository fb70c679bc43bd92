package domain

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var ErrPaymentNotFound = errors.New("Payment not found by orderID and transactionID")

// MinAmount is the smallest order total a payment accepts
const MinAmount = 0.1

// PaymentStatus represents the payment lifecycle
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusRefund  PaymentStatus = "REFUND"
)

// Payment is the charge taken for one order within a saga attempt
type Payment struct {
	ID            models.ID         `json:"id"`
	OrderID       string            `json:"orderId"`
	TransactionID string            `json:"transactionId"`
	TotalItems    int               `json:"totalItems"`
	TotalAmount   float64           `json:"totalAmount"`
	Status        PaymentStatus     `json:"status"`
	Timestamps    models.Timestamps `json:"timestamps"`
}

// NewPayment creates a pending payment with the totals of the order lines
func NewPayment(orderID, transactionID string, products []events.OrderProducts) *Payment {
	totalItems, totalAmount := Totals(products)
	return &Payment{
		ID:            models.GenerateUUID(),
		OrderID:       orderID,
		TransactionID: transactionID,
		TotalItems:    totalItems,
		TotalAmount:   totalAmount,
		Status:        PaymentStatusPending,
		Timestamps:    models.NewTimestamps(),
	}
}

// Totals sums quantities and line values
func Totals(products []events.OrderProducts) (int, float64) {
	var totalItems int
	var totalAmount float64
	for _, item := range products {
		totalItems += item.Quantity
		totalAmount += item.Product.UnitValue * float64(item.Quantity)
	}
	return totalItems, totalAmount
}

// ValidateAmount rejects totals below MinAmount
func (p *Payment) ValidateAmount() error {
	if p.TotalAmount < MinAmount {
		return errors.Errorf("The minimum amount available is %v", MinAmount)
	}
	return nil
}

// Complete marks the payment as realized
func (p *Payment) Complete() {
	p.Status = PaymentStatusSuccess
	p.Timestamps = p.Timestamps.Update()
}

// Refund marks the payment as returned to the customer
func (p *Payment) Refund() {
	p.Status = PaymentStatusRefund
	p.Timestamps = p.Timestamps.Update()
}

// PaymentRepository stores one payment per (orderId, transactionId)
type PaymentRepository interface {
	ExistsByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (bool, error)
	FindByOrderIDAndTransactionID(ctx context.Context, orderID, transactionID string) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
