package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ordersaga/choreography/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrInvalidTopic = errors.New("invalid topic")
	ErrInvalidEvent = errors.New("invalid event")
)

// Topic represents a bus topic with pattern matching support
type Topic string

func NewTopic(topic string) (Topic, error) {
	if topic == "" {
		return "", ErrInvalidTopic
	}
	return Topic(topic), nil
}

// Matches checks the topic against a pattern.
// "#" alone matches everything, a leading or trailing "#" matches a suffix or prefix,
// and "*" matches exactly one "-" separated segment.
func (t Topic) Matches(pattern Topic) bool {
	topicStr := t.String()
	patternStr := pattern.String()

	if patternStr == "#" {
		return true
	}

	if strings.HasPrefix(patternStr, "#") && strings.HasSuffix(patternStr, "#") {
		return strings.Contains(
			topicStr,
			strings.TrimSuffix(strings.TrimPrefix(patternStr, "#"), "#"),
		)
	}

	if strings.HasPrefix(patternStr, "#") {
		return strings.HasSuffix(topicStr, strings.TrimPrefix(patternStr, "#"))
	}

	if strings.HasSuffix(patternStr, "#") {
		return strings.HasPrefix(topicStr, strings.TrimSuffix(patternStr, "#"))
	}

	return matchPattern(strings.Split(patternStr, "-"), strings.Split(topicStr, "-"))
}

func (t Topic) String() string {
	return string(t)
}

func matchPattern(patternParts, topicParts []string) bool {
	if len(patternParts) != len(topicParts) {
		return false
	}

	if len(patternParts) == 0 {
		return true
	}

	if patternParts[0] == "*" || patternParts[0] == topicParts[0] {
		return matchPattern(patternParts[1:], topicParts[1:])
	}

	return false
}

// Metadata represents transport metadata attached to a message
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Set(key string, value string) {
	m[key] = value
}

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Product is a catalog item referenced by an order line
type Product struct {
	Code      string  `json:"code"`
	UnitValue float64 `json:"unitValue"`
}

// OrderProducts is one line of an order
type OrderProducts struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Order is the payload carried by every saga event
type Order struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transactionId"`
	Products      []OrderProducts `json:"products"`
}

func (o Order) clone() Order {
	products := make([]OrderProducts, len(o.Products))
	copy(products, o.Products)
	o.Products = products
	return o
}

// History is one audit entry appended by a participant
type History struct {
	Source    string    `json:"source"`
	Status    Status    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Event is the saga envelope passed from participant to participant.
// Status, source and history only change through Record, which returns a new version.
type Event struct {
	ID            models.ID
	OrderID       string
	TransactionID string
	Payload       Order
	CreatedAt     time.Time

	source  string
	status  Status
	history []History
}

// NewEvent starts a saga for the given order
func NewEvent(order Order, source, message string, now time.Time) *Event {
	return &Event{
		ID:            models.GenerateUUID(),
		OrderID:       order.ID,
		TransactionID: order.TransactionID,
		Payload:       order.clone(),
		CreatedAt:     now,
		source:        source,
		status:        StatusSuccess,
		history: []History{{
			Source:    source,
			Status:    StatusSuccess,
			Message:   message,
			CreatedAt: now,
		}},
	}
}

// Source returns the participant that last wrote this event
func (e *Event) Source() string {
	return e.source
}

// Status returns the current saga status
func (e *Event) Status() Status {
	return e.status
}

// History returns a copy of the audit trail
func (e *Event) History() []History {
	history := make([]History, len(e.history))
	copy(history, e.history)
	return history
}

// LastHistory returns the most recent audit entry
func (e *Event) LastHistory() (History, bool) {
	if len(e.history) == 0 {
		return History{}, false
	}
	return e.history[len(e.history)-1], true
}

// Record returns a new version of the event moved to status by source, with one history entry appended
func (e *Event) Record(source string, status Status, message string, at time.Time) (*Event, error) {
	if !CanTransition(e.status, status) {
		return nil, errors.Wrapf(ErrIllegalTransition, "%s -> %s by %s", e.status, status, source)
	}

	next := e.Clone()
	next.source = source
	next.status = status
	next.history = append(next.history, History{
		Source:    source,
		Status:    status,
		Message:   message,
		CreatedAt: at,
	})
	return next, nil
}

// Annotate returns a new version written by source with one history entry appended and the status kept
func (e *Event) Annotate(source string, message string, at time.Time) *Event {
	next := e.Clone()
	next.source = source
	next.history = append(next.history, History{
		Source:    source,
		Status:    e.status,
		Message:   message,
		CreatedAt: at,
	})
	return next
}

// Clone creates a deep copy of the event
func (e *Event) Clone() *Event {
	return &Event{
		ID:            e.ID,
		OrderID:       e.OrderID,
		TransactionID: e.TransactionID,
		Payload:       e.Payload.clone(),
		CreatedAt:     e.CreatedAt,
		source:        e.source,
		status:        e.status,
		history:       e.History(),
	}
}

type eventJSON struct {
	ID            models.ID `json:"id"`
	OrderID       string    `json:"orderId"`
	TransactionID string    `json:"transactionId"`
	Source        string    `json:"source"`
	Status        Status    `json:"status"`
	Payload       Order     `json:"payload"`
	History       []History `json:"history"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MarshalJSON implements json.Marshaler
func (e *Event) MarshalJSON() ([]byte, error) {
	history := e.history
	if history == nil {
		history = []History{}
	}
	return json.Marshal(eventJSON{
		ID:            e.ID,
		OrderID:       e.OrderID,
		TransactionID: e.TransactionID,
		Source:        e.source,
		Status:        e.status,
		Payload:       e.Payload,
		History:       history,
		CreatedAt:     e.CreatedAt,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Every field but history is required.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.ID == "":
		return errors.Wrap(ErrInvalidEvent, "id is required")
	case raw.TransactionID == "":
		return errors.Wrap(ErrInvalidEvent, "transactionId is required")
	case raw.Source == "":
		return errors.Wrap(ErrInvalidEvent, "source is required")
	case raw.Status == "":
		return errors.Wrap(ErrInvalidEvent, "status is required")
	case raw.OrderID == "":
		return errors.Wrap(ErrInvalidEvent, "orderId is required")
	case raw.Payload.ID == "" || raw.Payload.TransactionID == "":
		return errors.Wrap(ErrInvalidEvent, "payload id and transactionId are required")
	case raw.CreatedAt.IsZero():
		return errors.Wrap(ErrInvalidEvent, "createdAt is required")
	}

	history := raw.History
	if history == nil {
		history = []History{}
	}

	*e = Event{
		ID:            raw.ID,
		OrderID:       raw.OrderID,
		TransactionID: raw.TransactionID,
		Payload:       raw.Payload,
		CreatedAt:     raw.CreatedAt,
		source:        raw.Source,
		status:        raw.Status,
		history:       history,
	}
	return nil
}

// ToJSON converts event to JSON
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON creates event from JSON
func FromJSON(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Publisher publishes saga events to a topic
type Publisher interface {
	Publish(ctx context.Context, topic Topic, event *Event) error
}

// Handler handles saga events delivered from a topic
type Handler interface {
	Handle(ctx context.Context, topic Topic, event *Event) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, topic Topic, event *Event) error

func (f HandlerFunc) Handle(ctx context.Context, topic Topic, event *Event) error {
	return f(ctx, topic, event)
}

// Subscriber delivers events from the given topics to a handler until closed
type Subscriber interface {
	Subscribe(ctx context.Context, topics []Topic, handler Handler) error
	Close() error
}
