package audit

import (
	"context"
	"sync"
	"testing"
	"time"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
}

func (s *memorySink) Write(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *memorySink) all() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// waitForEvents polls until the sink holds n events or the deadline passes.
func waitForEvents(t *testing.T, sink *memorySink, n int) []Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if events := sink.all(); len(events) >= n {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, have %d", n, len(sink.all()))
	return nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return string(rune('a' + g.n - 1))
}

func TestServiceFillsDefaults(t *testing.T) {
	sink := &memorySink{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(sink, fixedClock{now}, &sequenceIDs{}, 8)
	defer svc.Close()

	svc.Log(Event{Action: ActionBuilt, RuleName: "IsPremierCustomer", Status: StatusSuccess})
	svc.Log(Event{Action: ActionValidated, Status: StatusFailure})

	events := waitForEvents(t, sink, 2)
	if events[0].OccurredAt != now || events[1].OccurredAt != now {
		t.Error("timestamps not filled from clock")
	}
	if events[0].EventID == "" || events[0].EventID == events[1].EventID {
		t.Errorf("event ids not unique: %q vs %q", events[0].EventID, events[1].EventID)
	}
	if events[0].Action != ActionBuilt || events[1].Action != ActionValidated {
		t.Errorf("event order lost: %+v", events)
	}
}

func TestServicePreservesExplicitFields(t *testing.T) {
	sink := &memorySink{}
	svc := NewService(sink, nil, nil, 8)
	defer svc.Close()

	set := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.Log(Event{EventID: "fixed", OccurredAt: set, Action: ActionLookedUp, Status: StatusSuccess})

	events := waitForEvents(t, sink, 1)
	if events[0].EventID != "fixed" || !events[0].OccurredAt.Equal(set) {
		t.Errorf("explicit fields overwritten: %+v", events[0])
	}
}

func TestServiceCloseIdempotent(t *testing.T) {
	svc := NewService(&memorySink{}, nil, nil, 1)
	if err := svc.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
