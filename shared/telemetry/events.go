package telemetry

import (
	"context"

	"github.com/ordersaga/choreography/shared/events"
)

// EventHandler delivers every event to handler with tel in its context.
// A nil tel returns handler unchanged.
func EventHandler(tel *Telemetry, handler events.Handler) events.Handler {
	if tel == nil {
		return handler
	}
	return events.HandlerFunc(func(ctx context.Context, topic events.Topic, event *events.Event) error {
		return handler.Handle(WithTelemetry(ctx, tel), topic, event)
	})
}
