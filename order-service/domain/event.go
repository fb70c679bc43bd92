package domain

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
)

var ErrEventNotFound = errors.New("Event not found.")

// EventRepository is the audit store of saga events.
// Save upserts by event id, so the final version of a saga replaces its earlier ones.
type EventRepository interface {
	Save(ctx context.Context, event *events.Event) error
	FindTopByOrderID(ctx context.Context, orderID string) (*events.Event, error)
	FindTopByTransactionID(ctx context.Context, transactionID string) (*events.Event, error)
	FindAll(ctx context.Context) ([]*events.Event, error)
}
