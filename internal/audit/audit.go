// Package audit records rule-build and validation activity asynchronously.
// Events are queued and written by a background worker so that the request
// path never blocks on the sink; a full queue drops events rather than
// backing up.
package audit

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Action constants.
const (
	ActionBuilt     = "built"
	ActionValidated = "validated"
	ActionLookedUp  = "looked_up"
)

// Status constants.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Event is one audit record.
type Event struct {
	OccurredAt   time.Time `json:"occurred_at"`
	EventID      string    `json:"event_id"`
	RequestID    string    `json:"request_id,omitempty"`
	Action       string    `json:"action"`
	RuleName     string    `json:"rule_name,omitempty"`
	AppliesTo    string    `json:"applies_to,omitempty"`
	CampaignID   string    `json:"campaign_id,omitempty"`
	Fingerprint  string    `json:"fingerprint,omitempty"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// Sink persists audit events.
type Sink interface {
	Write(ctx context.Context, event Event) error
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator produces event IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator implements IDGenerator with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() string { return uuid.NewString() }

// Service queues events and writes them in the background.
type Service struct {
	sink   Sink
	clock  Clock
	idgen  IDGenerator
	queue  chan Event
	stopCh chan struct{}
	closed int32
}

// NewService starts a background worker over the given sink. Nil clock and
// idgen get the system defaults.
func NewService(sink Sink, clock Clock, idgen IDGenerator, queueSize int) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if idgen == nil {
		idgen = UUIDGenerator{}
	}
	s := &Service{
		sink:   sink,
		clock:  clock,
		idgen:  idgen,
		queue:  make(chan Event, queueSize),
		stopCh: make(chan struct{}),
	}
	go s.worker()
	return s
}

func (s *Service) worker() {
	for {
		select {
		case event := <-s.queue:
			s.write(event)
		case <-s.stopCh:
			for len(s.queue) > 0 {
				s.write(<-s.queue)
			}
			return
		}
	}
}

func (s *Service) write(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.sink.Write(ctx, event); err != nil {
		log.Printf("audit: failed to write event: %v", err)
	}
}

// Log queues an event, filling in timestamp and event ID if unset. The
// event is dropped with a log line if the queue is full.
func (s *Service) Log(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.clock.Now()
	}
	if event.EventID == "" {
		event.EventID = s.idgen.Generate()
	}
	select {
	case s.queue <- event:
	default:
		log.Printf("audit: queue full, dropping %s event for %s", event.Action, event.RuleName)
	}
}

// Close stops the worker after draining queued events. Safe to call more
// than once.
func (s *Service) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil
	}
	close(s.stopCh)
	return nil
}

// StdoutSink writes events as JSON lines to standard output.
type StdoutSink struct{}

func (StdoutSink) Write(_ context.Context, event Event) error {
	return json.NewEncoder(os.Stdout).Encode(event)
}
