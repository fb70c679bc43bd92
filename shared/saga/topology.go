package saga

import (
	"github.com/ordersaga/choreography/shared/events"
	"github.com/pkg/errors"
)

// Node is one participant of the forward path with its two inbound topics
type Node struct {
	Source            string
	ForwardTopic      events.Topic
	CompensationTopic events.Topic
}

// Topology is the ordered forward path of a saga. Rollback walks it in reverse.
type Topology struct {
	initiator   string
	endingTopic events.Topic
	nodes       []Node
	positions   map[string]int
}

// NewTopology validates and builds a topology
func NewTopology(initiator string, endingTopic events.Topic, nodes ...Node) (*Topology, error) {
	if initiator == "" {
		return nil, errors.New("initiator is required")
	}
	if endingTopic == "" {
		return nil, errors.New("ending topic is required")
	}
	if len(nodes) == 0 {
		return nil, errors.New("topology needs at least one participant")
	}

	positions := make(map[string]int, len(nodes))
	for i, node := range nodes {
		if node.Source == "" || node.ForwardTopic == "" || node.CompensationTopic == "" {
			return nil, errors.Errorf("participant %d is incomplete", i)
		}
		if node.Source == initiator {
			return nil, errors.Errorf("initiator %s cannot be a participant", initiator)
		}
		if _, exists := positions[node.Source]; exists {
			return nil, errors.Errorf("participant %s appears twice", node.Source)
		}
		positions[node.Source] = i
	}

	copied := make([]Node, len(nodes))
	copy(copied, nodes)

	return &Topology{
		initiator:   initiator,
		endingTopic: endingTopic,
		nodes:       copied,
		positions:   positions,
	}, nil
}

// OrderFulfillment is the order -> product validation -> payment -> inventory topology
func OrderFulfillment() *Topology {
	topology, err := NewTopology(events.OrderSource, events.NotifyEndingTopic,
		Node{
			Source:            events.ProductValidationSource,
			ForwardTopic:      events.ProductValidationSuccessTopic,
			CompensationTopic: events.ProductValidationFailTopic,
		},
		Node{
			Source:            events.PaymentSource,
			ForwardTopic:      events.PaymentSuccessTopic,
			CompensationTopic: events.PaymentFailTopic,
		},
		Node{
			Source:            events.InventorySource,
			ForwardTopic:      events.InventorySuccessTopic,
			CompensationTopic: events.InventoryFailTopic,
		},
	)
	if err != nil {
		panic(err)
	}
	return topology
}

func (t *Topology) Initiator() string {
	return t.initiator
}

func (t *Topology) EndingTopic() events.Topic {
	return t.endingTopic
}

// Nodes returns the forward path
func (t *Topology) Nodes() []Node {
	nodes := make([]Node, len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// Node returns the participant registered under source
func (t *Topology) Node(source string) (Node, bool) {
	i, ok := t.positions[source]
	if !ok {
		return Node{}, false
	}
	return t.nodes[i], true
}

// Position returns the index of source on the forward path
func (t *Topology) Position(source string) (int, bool) {
	i, ok := t.positions[source]
	return i, ok
}
