package saga_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ordersaga/choreography/shared/events"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// scriptedParticipant succeeds or fails on demand and keeps a record per applied transaction
type scriptedParticipant struct {
	source         string
	failApply      bool
	failCompensate bool

	mu          sync.Mutex
	records     map[string]bool
	applied     int
	compensated int
}

func newScriptedParticipant(source string) *scriptedParticipant {
	return &scriptedParticipant{source: source, records: map[string]bool{}}
}

func (p *scriptedParticipant) Source() string { return p.source }

func (p *scriptedParticipant) Messages() saga.Messages {
	return saga.Messages{
		Success:               p.source + " done",
		FailurePrefix:         p.source + " failed: ",
		Duplicate:             p.source + " duplicate",
		Rollback:              p.source + " rolled back",
		RollbackFailurePrefix: p.source + " rollback failed: ",
	}
}

func (p *scriptedParticipant) Apply(_ context.Context, event *events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failApply {
		return saga.DomainRuleViolation("scripted failure")
	}
	p.records[event.OrderID+"/"+event.TransactionID] = true
	p.applied++
	return nil
}

func (p *scriptedParticipant) Compensate(_ context.Context, event *events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.compensated++
	if p.failCompensate {
		return saga.CompensationFailure("scripted compensation failure")
	}
	delete(p.records, event.OrderID+"/"+event.TransactionID)
	return nil
}

func (p *scriptedParticipant) ExistsByOrderIDAndTransactionID(_ context.Context, orderID, transactionID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.records[orderID+"/"+transactionID], nil
}

// routingDispatcher routes without publishing, so a test can drive the saga hop by hop
type routingDispatcher struct {
	controller *saga.ExecutionController
}

func (d routingDispatcher) Dispatch(_ context.Context, event *events.Event) (events.Topic, error) {
	return d.controller.Route(event)
}

type harness struct {
	topology   *saga.Topology
	controller *saga.ExecutionController
	forward    map[events.Topic]*saga.StepExecutor
	backward   map[events.Topic]*saga.StepExecutor
}

func newHarness(participants ...*scriptedParticipant) *harness {
	nodes := make([]saga.Node, len(participants))
	for i, p := range participants {
		nodes[i] = saga.Node{
			Source:            p.source,
			ForwardTopic:      events.Topic(p.source + "-success"),
			CompensationTopic: events.Topic(p.source + "-fail"),
		}
	}
	topology, err := saga.NewTopology(events.OrderSource, events.NotifyEndingTopic, nodes...)
	if err != nil {
		panic(err)
	}

	h := &harness{
		topology:   topology,
		controller: saga.NewExecutionController(topology, nil, nil),
		forward:    map[events.Topic]*saga.StepExecutor{},
		backward:   map[events.Topic]*saga.StepExecutor{},
	}
	dispatcher := routingDispatcher{controller: h.controller}
	for i, p := range participants {
		executor := saga.NewStepExecutor(p, saga.NewGuard(p.source, p, nil), dispatcher, nil)
		h.forward[nodes[i].ForwardTopic] = executor
		h.backward[nodes[i].CompensationTopic] = executor
	}
	return h
}

// run drives the saga to the ending topic and returns every version of the event
func (h *harness) run(t *rapid.T, event *events.Event) []*events.Event {
	versions := []*events.Event{event}
	ctx := context.Background()

	for hops := 0; hops < 4*len(h.forward)+2; hops++ {
		topic, err := h.controller.Route(event)
		if err != nil {
			t.Fatalf("route: %v", err)
		}
		if topic == h.topology.EndingTopic() {
			return versions
		}

		var next *events.Event
		if executor, ok := h.forward[topic]; ok {
			next, err = executor.Execute(ctx, event)
		} else if executor, ok := h.backward[topic]; ok {
			next, err = executor.Compensate(ctx, event)
		} else {
			t.Fatalf("no executor for topic %s", topic)
		}
		if err != nil {
			t.Fatalf("execute %s: %v", topic, err)
		}

		event = next
		versions = append(versions, event)
	}

	t.Fatalf("saga did not reach the ending topic")
	return nil
}

func drawSaga(t *rapid.T) (*harness, []*scriptedParticipant) {
	n := rapid.IntRange(1, 5).Draw(t, "participants")
	participants := make([]*scriptedParticipant, n)
	for i := range participants {
		p := newScriptedParticipant(rapid.StringMatching(`[A-Z]{3,8}`).Draw(t, "source") + "_" + string(rune('A'+i)))
		p.failApply = rapid.Bool().Draw(t, "failApply")
		p.failCompensate = rapid.Bool().Draw(t, "failCompensate")
		participants[i] = p
	}
	return newHarness(participants...), participants
}

func drawOrder(t *rapid.T) events.Order {
	lines := rapid.IntRange(1, 4).Draw(t, "lines")
	products := make([]events.OrderProducts, lines)
	for i := range products {
		products[i] = events.OrderProducts{
			Product: events.Product{
				Code:      rapid.StringMatching(`[A-Z_]{3,12}`).Draw(t, "code"),
				UnitValue: rapid.Float64Range(0.01, 500).Draw(t, "unitValue"),
			},
			Quantity: rapid.IntRange(1, 10).Draw(t, "quantity"),
		}
	}
	return events.Order{
		ID:            rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, "orderId"),
		TransactionID: rapid.StringMatching(`[0-9]{13}_[a-f0-9]{8}`).Draw(t, "transactionId"),
		Products:      products,
	}
}

func TestProperty_HistoryGrowsByOnePerInvocation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h, _ := drawSaga(t)
		versions := h.run(t, events.NewEvent(drawOrder(t), events.OrderSource, "Saga started!", testNow))

		for i := 1; i < len(versions); i++ {
			prev, next := versions[i-1].History(), versions[i].History()
			if len(next) != len(prev)+1 {
				t.Fatalf("history grew from %d to %d", len(prev), len(next))
			}
			for j := range prev {
				if prev[j] != next[j] {
					t.Fatalf("history entry %d changed", j)
				}
			}
			last, _ := versions[i].LastHistory()
			if last.Source != versions[i].Source() {
				t.Fatalf("source %s does not match last history entry %s", versions[i].Source(), last.Source)
			}
		}
	})
}

func TestProperty_StatusSequenceIsLegal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h, participants := drawSaga(t)
		versions := h.run(t, events.NewEvent(drawOrder(t), events.OrderSource, "Saga started!", testNow))

		// SUCCESS* then optionally ROLLBACK_PENDING followed only by FAIL
		phase := 0
		for _, version := range versions {
			switch version.Status() {
			case events.StatusSuccess:
				if phase != 0 {
					t.Fatalf("SUCCESS after rollback started")
				}
			case events.StatusRollbackPending:
				if phase != 0 {
					t.Fatalf("second ROLLBACK_PENDING")
				}
				phase = 1
			case events.StatusFail:
				if phase == 0 {
					t.Fatalf("FAIL without ROLLBACK_PENDING")
				}
				phase = 2
			}
		}

		final := versions[len(versions)-1]
		anyFailure := false
		for _, p := range participants {
			anyFailure = anyFailure || p.failApply
		}
		if anyFailure && final.Status() != events.StatusFail {
			t.Fatalf("failed saga ended with %s", final.Status())
		}
		if !anyFailure && final.Status() != events.StatusSuccess {
			t.Fatalf("successful saga ended with %s", final.Status())
		}
	})
}

func TestProperty_CompensationMirrorsForwardPath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h, participants := drawSaga(t)
		h.run(t, events.NewEvent(drawOrder(t), events.OrderSource, "Saga started!", testNow))

		failed := -1
		for i, p := range participants {
			if p.failApply {
				failed = i
				break
			}
		}

		for i, p := range participants {
			switch {
			case failed == -1 || i < failed:
				if p.applied != 1 {
					t.Fatalf("participant %d applied %d times", i, p.applied)
				}
			default:
				if p.applied != 0 {
					t.Fatalf("participant %d after the failure applied", i)
				}
			}

			expectedCompensations := 0
			if failed != -1 && i <= failed {
				expectedCompensations = 1
			}
			if p.compensated != expectedCompensations {
				t.Fatalf("participant %d compensated %d times, want %d", i, p.compensated, expectedCompensations)
			}
		}
	})
}

func TestProperty_RouteIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h, _ := drawSaga(t)
		versions := h.run(t, events.NewEvent(drawOrder(t), events.OrderSource, "Saga started!", testNow))
		version := versions[rapid.IntRange(0, len(versions)-1).Draw(t, "version")]

		first, err := h.controller.Route(version)
		if err != nil {
			t.Fatalf("route: %v", err)
		}

		data, err := version.ToJSON()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		replayed, err := events.FromJSON(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		other := saga.NewExecutionController(h.topology, nil, nil)
		for _, candidate := range []*events.Event{version, version.Clone(), replayed} {
			topic, err := other.Route(candidate)
			if err != nil || topic != first {
				t.Fatalf("route changed: %s vs %s (%v)", topic, first, err)
			}
		}
	})
}

func TestRedeliveryIsRejected(t *testing.T) {
	participant := newScriptedParticipant(events.ProductValidationSource)
	h := newHarness(participant)
	executor := h.forward[events.Topic(events.ProductValidationSource+"-success")]
	start := events.NewEvent(testOrder(), events.OrderSource, "Saga started!", testNow)

	first, err := executor.Execute(context.Background(), start)
	require.NoError(t, err)
	require.Equal(t, events.StatusSuccess, first.Status())

	second, err := executor.Execute(context.Background(), start)
	require.NoError(t, err)
	require.Equal(t, events.StatusRollbackPending, second.Status())
	last, _ := second.LastHistory()
	require.Equal(t, events.ProductValidationSource+" failed: "+events.ProductValidationSource+" duplicate", last.Message)
	require.Equal(t, 1, participant.applied)
}
