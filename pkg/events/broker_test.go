package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/pkg/models"
)

// memoryLog is an in-memory EventQuerier. Tests drive Broker.Dispatch
// directly, so no NOTIFY listener is wired.
type memoryLog struct {
	mu      sync.Mutex
	entries map[string][]models.EventEntry
}

func newMemoryLog() *memoryLog {
	return &memoryLog{entries: make(map[string][]models.EventEntry)}
}

func (m *memoryLog) add(e models.EventEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.IntentID] = append(m.entries[e.IntentID], e)
}

func (m *memoryLog) ListEventsSince(ctx context.Context, intentID string, fromSequence int64, limit int) ([]models.EventEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.EventEntry
	for _, e := range m.entries[intentID] {
		if e.SequenceNumber >= fromSequence {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryLog) GetEvent(ctx context.Context, intentID string, sequenceNumber int64) (*models.EventEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries[intentID] {
		if e.SequenceNumber == sequenceNumber {
			entry := e
			return &entry, nil
		}
	}
	return nil, errors.New("event not found")
}

func entry(intentID string, seq int64, eventType, actor string) models.EventEntry {
	return models.EventEntry{
		IntentID:       intentID,
		EventType:      eventType,
		ActorAgentID:   actor,
		SequenceNumber: seq,
		Timestamp:      time.Now(),
	}
}

// dispatch marshals an entry and feeds it to the broker the way the
// NOTIFY listener would.
func dispatch(t *testing.T, b *Broker, channel string, e models.EventEntry) {
	t.Helper()
	raw, err := json.Marshal(e)
	require.NoError(t, err)
	b.Dispatch(channel, raw)
}

func receive(t *testing.T, s *Subscriber) StreamEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ev, err := s.Receive(ctx)
	require.NoError(t, err)
	return ev
}

func TestBroker_Subscribe(t *testing.T) {
	log := newMemoryLog()
	b := NewBroker(log, 16)
	ctx := context.Background()

	t.Run("rejects unknown policy", func(t *testing.T) {
		_, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, Policy("bogus"), 0)
		assert.ErrorContains(t, err, "unknown backpressure policy")
	})

	t.Run("block policy requires an intent scope", func(t *testing.T) {
		_, err := b.Subscribe(ctx, Filter{}, PolicyBlock, 0)
		assert.ErrorContains(t, err, "requires intent_id")
	})

	t.Run("replay requires an intent scope", func(t *testing.T) {
		_, err := b.Subscribe(ctx, Filter{}, PolicyDropOldest, 3)
		assert.ErrorContains(t, err, "requires intent_id")
	})

	t.Run("subscriber count tracks attach and close", func(t *testing.T) {
		before := b.ActiveSubscribers()
		s, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, PolicyDropOldest, 0)
		require.NoError(t, err)
		assert.Equal(t, before+1, b.ActiveSubscribers())
		s.Close()
		assert.Equal(t, before, b.ActiveSubscribers())
	})
}

func TestBroker_LiveDelivery(t *testing.T) {
	log := newMemoryLog()
	b := NewBroker(log, 16)
	ctx := context.Background()

	t.Run("routes by intent channel", func(t *testing.T) {
		s, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, PolicyDropOldest, 0)
		require.NoError(t, err)
		defer s.Close()

		dispatch(t, b, IntentChannel("i1"), entry("i1", 1, EventTypeCreated, "a1"))
		dispatch(t, b, IntentChannel("i2"), entry("i2", 1, EventTypeCreated, "a1"))
		dispatch(t, b, IntentChannel("i1"), entry("i1", 2, EventTypeStatePatched, "a1"))

		first := receive(t, s)
		assert.Equal(t, "event", first.Type)
		assert.Equal(t, int64(1), first.Event.SequenceNumber)
		second := receive(t, s)
		assert.Equal(t, int64(2), second.Event.SequenceNumber)
		assert.Equal(t, "i1", second.Event.IntentID)
	})

	t.Run("event type and actor filters", func(t *testing.T) {
		s, err := b.Subscribe(ctx, Filter{
			IntentID:   "i3",
			EventTypes: []string{EventTypeStatusChanged},
			Actor:      "agent-a",
		}, PolicyDropOldest, 0)
		require.NoError(t, err)
		defer s.Close()

		dispatch(t, b, IntentChannel("i3"), entry("i3", 1, EventTypeCreated, "agent-a"))
		dispatch(t, b, IntentChannel("i3"), entry("i3", 2, EventTypeStatusChanged, "agent-b"))
		dispatch(t, b, IntentChannel("i3"), entry("i3", 3, EventTypeStatusChanged, "agent-a"))

		got := receive(t, s)
		assert.Equal(t, int64(3), got.Event.SequenceNumber)
	})

	t.Run("global channel carries cross-intent events", func(t *testing.T) {
		s, err := b.Subscribe(ctx, Filter{}, PolicyDropOldest, 0)
		require.NoError(t, err)
		defer s.Close()

		dispatch(t, b, GlobalIntentsChannel, entry("i4", 7, EventTypeStatusChanged, "a1"))
		dispatch(t, b, GlobalIntentsChannel, entry("i5", 2, EventTypeStatusChanged, "a1"))

		assert.Equal(t, "i4", receive(t, s).Event.IntentID)
		assert.Equal(t, "i5", receive(t, s).Event.IntentID)
	})

	t.Run("truncation envelope is resolved against the log", func(t *testing.T) {
		full := entry("i6", 2, EventTypeStatePatched, "a1")
		full.Payload = map[string]any{"detail": "restored from the durable log"}
		log.add(full)

		s, err := b.Subscribe(ctx, Filter{IntentID: "i6"}, PolicyDropOldest, 0)
		require.NoError(t, err)
		defer s.Close()

		envelope := fmt.Sprintf(`{"truncated":true,"intent_id":"i6","sequence_number":2,"event_type":%q}`,
			EventTypeStatePatched)
		b.Dispatch(IntentChannel("i6"), []byte(envelope))

		got := receive(t, s)
		assert.Equal(t, int64(2), got.Event.SequenceNumber)
		assert.Equal(t, "restored from the durable log", got.Event.Payload["detail"])
	})

	t.Run("closed subscriber receive returns EOF", func(t *testing.T) {
		s, err := b.Subscribe(ctx, Filter{IntentID: "i7"}, PolicyDropOldest, 0)
		require.NoError(t, err)
		s.Close()

		_, err = s.Receive(ctx)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestBroker_Replay(t *testing.T) {
	log := newMemoryLog()
	for seq := int64(1); seq <= 5; seq++ {
		log.add(entry("i1", seq, EventTypeStatePatched, "a1"))
	}
	b := NewBroker(log, 16)
	ctx := context.Background()

	s, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, PolicyDropOldest, 2)
	require.NoError(t, err)
	defer s.Close()

	// Replay starts at from_sequence and walks the log to the head.
	for want := int64(2); want <= 5; want++ {
		got := receive(t, s)
		require.Equal(t, "event", got.Type)
		assert.Equal(t, want, got.Event.SequenceNumber)
	}

	// A live duplicate of a replayed sequence is suppressed; the next new
	// sequence comes through.
	dispatch(t, b, IntentChannel("i1"), entry("i1", 5, EventTypeStatePatched, "a1"))
	dispatch(t, b, IntentChannel("i1"), entry("i1", 6, EventTypeStatusChanged, "a1"))

	got := receive(t, s)
	assert.Equal(t, int64(6), got.Event.SequenceNumber)
}

func TestBroker_Backpressure(t *testing.T) {
	ctx := context.Background()

	t.Run("drop_oldest surfaces a lag frame", func(t *testing.T) {
		b := NewBroker(newMemoryLog(), 2)
		s, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, PolicyDropOldest, 0)
		require.NoError(t, err)
		defer s.Close()

		for seq := int64(1); seq <= 4; seq++ {
			dispatch(t, b, IntentChannel("i1"), entry("i1", seq, EventTypeStatePatched, "a1"))
		}

		lag := receive(t, s)
		assert.Equal(t, "lag", lag.Type)
		assert.Equal(t, int64(2), lag.Dropped)

		// The oldest two were evicted; the newest two remain in order.
		assert.Equal(t, int64(3), receive(t, s).Event.SequenceNumber)
		assert.Equal(t, int64(4), receive(t, s).Event.SequenceNumber)
	})

	t.Run("block drains the durable log without loss", func(t *testing.T) {
		log := newMemoryLog()
		for seq := int64(1); seq <= 3; seq++ {
			log.add(entry("i1", seq, EventTypeStatePatched, "a1"))
		}
		b := NewBroker(log, 1)
		s, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, PolicyBlock, 0)
		require.NoError(t, err)
		defer s.Close()

		// The second dispatch overflows the one-slot queue and flips the
		// subscriber into catchup.
		dispatch(t, b, IntentChannel("i1"), entry("i1", 1, EventTypeStatePatched, "a1"))
		dispatch(t, b, IntentChannel("i1"), entry("i1", 2, EventTypeStatePatched, "a1"))

		for want := int64(1); want <= 3; want++ {
			got := receive(t, s)
			require.Equal(t, "event", got.Type)
			assert.Equal(t, want, got.Event.SequenceNumber)
		}

		// The stale queued copy of sequence 1 must not resurface.
		short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()
		_, err = s.Receive(short)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		dispatch(t, b, IntentChannel("i1"), entry("i1", 4, EventTypeStatusChanged, "a1"))
		assert.Equal(t, int64(4), receive(t, s).Event.SequenceNumber)
	})

	t.Run("disconnect closes the overflowing subscriber", func(t *testing.T) {
		b := NewBroker(newMemoryLog(), 1)
		s, err := b.Subscribe(ctx, Filter{IntentID: "i1"}, PolicyDisconnect, 0)
		require.NoError(t, err)

		dispatch(t, b, IntentChannel("i1"), entry("i1", 1, EventTypeStatePatched, "a1"))
		dispatch(t, b, IntentChannel("i1"), entry("i1", 2, EventTypeStatePatched, "a1"))

		// The queued event may still drain before the error surfaces.
		for {
			_, err := s.Receive(ctx)
			if err != nil {
				assert.ErrorIs(t, err, ErrSlowConsumer)
				break
			}
		}
		assert.Equal(t, 0, b.ActiveSubscribers())
	})
}
