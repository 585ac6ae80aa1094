package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/pkg/metrics"
	"github.com/openintent-io/openintent/pkg/models"
)

// ErrSlowConsumer is returned by Receive after a disconnect-policy
// subscriber overflowed its queue.
var ErrSlowConsumer = errors.New("subscriber queue overflow")

// refetchTimeout bounds the durable-log lookup for a truncated NOTIFY
// payload.
const refetchTimeout = 5 * time.Second

// Filter selects which events a subscriber receives. Zero values match
// everything.
type Filter struct {
	// IntentID scopes the subscription to one intent's channel. Empty
	// subscribes to the global channel instead.
	IntentID string
	// EventTypes restricts delivery to the listed types.
	EventTypes []string
	// Actor restricts delivery to events by one agent.
	Actor string
}

// Matches reports whether an entry passes the type and actor filters.
// Channel routing has already restricted the intent.
func (f Filter) Matches(e *models.EventEntry) bool {
	if f.Actor != "" && e.ActorAgentID != f.Actor {
		return false
	}
	if len(f.EventTypes) == 0 {
		return true
	}
	for _, t := range f.EventTypes {
		if e.EventType == t {
			return true
		}
	}
	return false
}

// Subscriber is one attached stream consumer. Receive is single-consumer:
// exactly one goroutine (the owning HTTP or WS handler) may call it.
type Subscriber struct {
	id     string
	filter Filter
	policy Policy
	broker *Broker

	queue   chan *models.EventEntry
	dropped atomic.Int64
	catchup atomic.Bool

	// cursor is the last delivered sequence number. Consumer-side only.
	cursor int64
	// pending holds a durable-log batch being drained during catchup.
	pending []models.EventEntry

	closed    chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Broker fans committed events out to stream subscribers. It receives
// NOTIFY payloads from the listener, routes them by channel and filter,
// and applies each subscriber's backpressure policy when its bounded
// queue is full.
type Broker struct {
	querier   EventQuerier
	queueSize int

	mu   sync.RWMutex
	subs map[string]*Subscriber
	// refs counts subscribers per NOTIFY channel so LISTEN starts with
	// the first and stops with the last.
	refs map[string]int

	listener   *NotifyListener
	listenerMu sync.RWMutex
}

// NewBroker creates a broker with the given per-subscriber queue size.
func NewBroker(querier EventQuerier, queueSize int) *Broker {
	if queueSize < 1 {
		queueSize = 1024
	}
	return &Broker{
		querier:   querier,
		queueSize: queueSize,
		subs:      make(map[string]*Subscriber),
		refs:      make(map[string]int),
	}
}

// SetListener wires the NOTIFY listener. Called once during startup.
func (b *Broker) SetListener(l *NotifyListener) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	b.listener = l
}

// Subscribe attaches a consumer. A positive fromSequence replays the
// durable log from that sequence before switching to live delivery with
// no gaps and no duplicates. Replay and the block policy require an
// intent-scoped filter, since sequence numbers are per intent.
func (b *Broker) Subscribe(ctx context.Context, filter Filter, policy Policy, fromSequence int64) (*Subscriber, error) {
	if policy == "" {
		policy = PolicyDropOldest
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown backpressure policy %q", policy)
	}
	if filter.IntentID == "" && policy == PolicyBlock {
		return nil, errors.New("block backpressure requires intent_id")
	}
	if filter.IntentID == "" && fromSequence > 0 {
		return nil, errors.New("from_sequence replay requires intent_id")
	}

	s := &Subscriber{
		id:     uuid.New().String(),
		filter: filter,
		policy: policy,
		broker: b,
		queue:  make(chan *models.EventEntry, b.queueSize),
		closed: make(chan struct{}),
	}
	if fromSequence > 0 {
		s.cursor = fromSequence - 1
		s.catchup.Store(true)
	}

	channel := GlobalIntentsChannel
	if filter.IntentID != "" {
		channel = IntentChannel(filter.IntentID)
	}

	b.mu.Lock()
	b.subs[s.id] = s
	b.refs[channel]++
	needListen := b.refs[channel] == 1
	b.mu.Unlock()

	if needListen {
		if err := b.listen(ctx, channel); err != nil {
			b.remove(s, channel)
			return nil, err
		}
	}

	metrics.StreamSubscribers.Inc()
	return s, nil
}

func (b *Broker) listen(ctx context.Context, channel string) error {
	b.listenerMu.RLock()
	l := b.listener
	b.listenerMu.RUnlock()
	if l == nil {
		return nil // tests drive Dispatch directly
	}
	return l.Listen(ctx, channel)
}

func (b *Broker) remove(s *Subscriber, channel string) {
	b.mu.Lock()
	if _, ok := b.subs[s.id]; !ok {
		b.mu.Unlock()
		return
	}
	delete(b.subs, s.id)
	b.refs[channel]--
	lastOut := b.refs[channel] == 0
	if lastOut {
		delete(b.refs, channel)
	}
	b.mu.Unlock()

	metrics.StreamSubscribers.Dec()

	if lastOut {
		b.listenerMu.RLock()
		l := b.listener
		b.listenerMu.RUnlock()
		if l != nil {
			go func() {
				// Re-check in case someone resubscribed meanwhile.
				b.mu.RLock()
				_, resubscribed := b.refs[channel]
				b.mu.RUnlock()
				if resubscribed {
					return
				}
				if err := l.Unlisten(context.Background(), channel); err != nil {
					slog.Error("UNLISTEN failed", "channel", channel, "error", err)
				}
			}()
		}
	}
}

// Dispatch implements Dispatcher. It decodes a NOTIFY payload, resolving
// truncation envelopes against the durable log, and offers the entry to
// every matching subscriber.
func (b *Broker) Dispatch(channel string, payload []byte) {
	entry, err := b.decode(payload)
	if err != nil {
		slog.Warn("Dropping undecodable NOTIFY payload", "channel", channel, "error", err)
		return
	}

	b.mu.RLock()
	matched := make([]*Subscriber, 0, 4)
	for _, s := range b.subs {
		if s.channel() != channel {
			continue
		}
		if !s.filter.Matches(entry) {
			continue
		}
		matched = append(matched, s)
	}
	b.mu.RUnlock()

	for _, s := range matched {
		b.offer(s, entry)
	}
}

func (s *Subscriber) channel() string {
	if s.filter.IntentID != "" {
		return IntentChannel(s.filter.IntentID)
	}
	return GlobalIntentsChannel
}

func (b *Broker) decode(payload []byte) (*models.EventEntry, error) {
	var probe struct {
		Truncated      bool   `json:"truncated"`
		IntentID       string `json:"intent_id"`
		SequenceNumber int64  `json:"sequence_number"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, fmt.Errorf("decode NOTIFY payload: %w", err)
	}

	if probe.Truncated {
		ctx, cancel := context.WithTimeout(context.Background(), refetchTimeout)
		defer cancel()
		entry, err := b.querier.GetEvent(ctx, probe.IntentID, probe.SequenceNumber)
		if err != nil {
			return nil, fmt.Errorf("re-fetch truncated event: %w", err)
		}
		return entry, nil
	}

	var entry models.EventEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, fmt.Errorf("decode NOTIFY payload: %w", err)
	}
	return &entry, nil
}

// offer enqueues an entry for one subscriber, applying its backpressure
// policy when the queue is full.
func (b *Broker) offer(s *Subscriber, entry *models.EventEntry) {
	select {
	case <-s.closed:
		return
	default:
	}

	select {
	case s.queue <- entry:
		return
	default:
	}

	switch s.policy {
	case PolicyDropOldest:
		// Evict the head to make room. The consumer may race us for the
		// head; either way one slot frees up.
		select {
		case <-s.queue:
			s.dropped.Add(1)
			metrics.StreamEventsDropped.WithLabelValues(string(PolicyDropOldest)).Inc()
		default:
		}
		select {
		case s.queue <- entry:
		default:
			s.dropped.Add(1)
			metrics.StreamEventsDropped.WithLabelValues(string(PolicyDropOldest)).Inc()
		}

	case PolicyBlock:
		// The durable log is authoritative: skip the live delivery and
		// let the consumer drain the log from its cursor.
		s.catchup.Store(true)
		metrics.StreamEventsDropped.WithLabelValues(string(PolicyBlock)).Inc()

	case PolicyDisconnect:
		metrics.StreamEventsDropped.WithLabelValues(string(PolicyDisconnect)).Inc()
		s.close(ErrSlowConsumer)
		b.remove(s, s.channel())
	}
}

// Receive returns the next frame for the subscriber. It blocks until an
// event arrives, the context is cancelled, or the stream closes. After a
// normal Close it returns io.EOF; after a disconnect-policy overflow it
// returns ErrSlowConsumer.
func (s *Subscriber) Receive(ctx context.Context) (StreamEvent, error) {
	for {
		// Surface accumulated lag before the next event.
		if n := s.dropped.Swap(0); n > 0 {
			return StreamEvent{Type: "lag", Dropped: n}, nil
		}

		// Drain the current durable-log batch.
		if len(s.pending) > 0 {
			e := s.pending[0]
			s.pending = s.pending[1:]
			if e.SequenceNumber <= s.cursor {
				continue
			}
			s.cursor = e.SequenceNumber
			if !s.filter.Matches(&e) {
				continue
			}
			entry := e
			return StreamEvent{Type: "event", Event: &entry}, nil
		}

		// Catchup reads the durable log from the cursor until it returns
		// empty, which means we are at the log head and live delivery can
		// resume. Queue entries at or below the cursor are dropped as
		// duplicates afterwards.
		if s.catchup.Load() {
			batch, err := s.broker.querier.ListEventsSince(ctx, s.filter.IntentID, s.cursor+1, catchupBatchSize)
			if err != nil {
				return StreamEvent{}, fmt.Errorf("catchup query: %w", err)
			}
			if len(batch) == 0 {
				s.catchup.Store(false)
				continue
			}
			s.pending = batch
			continue
		}

		select {
		case e := <-s.queue:
			if s.filter.IntentID != "" && e.SequenceNumber <= s.cursor {
				continue
			}
			s.cursor = e.SequenceNumber
			return StreamEvent{Type: "event", Event: e}, nil
		case <-s.closed:
			if s.closeErr != nil {
				return StreamEvent{}, s.closeErr
			}
			return StreamEvent{}, io.EOF
		case <-ctx.Done():
			return StreamEvent{}, ctx.Err()
		}
	}
}

// Close detaches the subscriber from the broker.
func (s *Subscriber) Close() {
	s.broker.remove(s, s.channel())
	s.close(nil)
}

func (s *Subscriber) close(err error) {
	s.closeOnce.Do(func() {
		s.closeErr = err
		close(s.closed)
	})
}

// Shutdown closes every subscriber. Called during server shutdown.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	subs := make([]*Subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}

// ActiveSubscribers returns the number of attached subscribers.
func (b *Broker) ActiveSubscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
