package application

import (
	"context"

	"github.com/ordersaga/choreography/payment-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
)

var _ saga.Participant = (*ProcessPayment)(nil)

var paymentMessages = saga.Messages{
	Success:               "Payment realized successfully!",
	FailurePrefix:         "Fail to realize payment: ",
	Duplicate:             "There's another transactionId for this payment.",
	Rollback:              "Rollback executed for payment!",
	RollbackFailurePrefix: "Rollback not executed for payment: ",
}

// ProcessPayment is the payment step of the saga
type ProcessPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewProcessPayment creates a new ProcessPayment participant
func NewProcessPayment(paymentRepository domain.PaymentRepository) *ProcessPayment {
	return &ProcessPayment{
		paymentRepository: paymentRepository,
	}
}

func (uc *ProcessPayment) Source() string {
	return events.PaymentSource
}

func (uc *ProcessPayment) Messages() saga.Messages {
	return paymentMessages
}

// Apply records a pending payment, then completes it when the total is acceptable.
// A rejected payment stays PENDING so the compensation can refund it.
func (uc *ProcessPayment) Apply(ctx context.Context, event *events.Event) error {
	payment := domain.NewPayment(event.OrderID, event.TransactionID, event.Payload.Products)
	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to save payment")
	}

	if err := payment.ValidateAmount(); err != nil {
		return saga.DomainRuleViolation(err.Error())
	}

	payment.Complete()
	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to save payment")
	}
	return nil
}

// Compensate refunds the stored payment
func (uc *ProcessPayment) Compensate(ctx context.Context, event *events.Event) error {
	payment, err := uc.paymentRepository.FindByOrderIDAndTransactionID(ctx, event.OrderID, event.TransactionID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return saga.CompensationFailure(err.Error())
		}
		return errors.Wrap(err, "failed to find payment")
	}

	payment.Refund()
	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return errors.Wrap(err, "failed to save payment")
	}
	return nil
}
