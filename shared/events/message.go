package events

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Message is the transport envelope wrapping a saga event on the bus
type Message struct {
	ID        string          `json:"id"`
	Topic     Topic           `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	Metadata  Metadata        `json:"metadata,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps an event for publication on topic
func NewMessage(topic Topic, event *Event) (*Message, error) {
	if topic == "" {
		return nil, ErrInvalidTopic
	}

	payload, err := event.ToJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event")
	}

	return &Message{
		ID:        event.ID.String(),
		Topic:     topic,
		Payload:   payload,
		Metadata:  Metadata{"transaction_id": event.TransactionID, "source": event.Source()},
		Timestamp: time.Now().UTC(),
	}, nil
}

// Event decodes the wrapped saga event
func (m *Message) Event() (*Event, error) {
	event, err := FromJSON(m.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal event")
	}
	return event, nil
}

// DecodeMessage parses a raw transport body
func DecodeMessage(body []byte) (*Message, error) {
	var message Message
	if err := json.Unmarshal(body, &message); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}
	if message.Topic == "" {
		return nil, ErrInvalidTopic
	}
	if message.Metadata == nil {
		message.Metadata = make(Metadata)
	}
	return &message, nil
}
