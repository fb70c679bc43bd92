package application

import (
	"context"

	"github.com/ordersaga/choreography/order-service/domain"
	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
)

var (
	ErrEmptyFilters                 = errors.New("OrderID or TransactionID must be informed.")
	ErrEventNotFoundByOrderID       = errors.New("Event not found by orderId.")
	ErrEventNotFoundByTransactionID = errors.New("Event not found by transactionId.")
)

// EventFilters selects the saga to read. OrderID wins when both are set.
type EventFilters struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// GetEvents reads the audit store
type GetEvents struct {
	eventRepository domain.EventRepository
}

// NewGetEvents creates a new GetEvents use case
func NewGetEvents(eventRepository domain.EventRepository) *GetEvents {
	return &GetEvents{
		eventRepository: eventRepository,
	}
}

// FindByFilters returns the latest event of an order or of a transaction
func (uc *GetEvents) FindByFilters(ctx context.Context, filters EventFilters) (*events.Event, error) {
	switch {
	case filters.OrderID != "":
		event, err := uc.eventRepository.FindTopByOrderID(ctx, filters.OrderID)
		return event, notFound(err, ErrEventNotFoundByOrderID)
	case filters.TransactionID != "":
		event, err := uc.eventRepository.FindTopByTransactionID(ctx, filters.TransactionID)
		return event, notFound(err, ErrEventNotFoundByTransactionID)
	default:
		return nil, ErrEmptyFilters
	}
}

// FindAll returns every stored event, most recent first
func (uc *GetEvents) FindAll(ctx context.Context) ([]*events.Event, error) {
	all, err := uc.eventRepository.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}
	return all, nil
}

func notFound(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEventNotFound) {
		return sentinel
	}
	return errors.Wrap(err, "failed to find event")
}
