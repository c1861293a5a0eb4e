package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Bus is the in-process pub/sub hub. One instance per process, constructed
// at startup and shared by every component that publishes or subscribes.
type Bus struct {
	limit  int
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[int]*Subscription
	nextID int
	closed bool
}

// NewBus creates a bus whose subscribers buffer up to queueLimit events.
func NewBus(queueLimit int) *Bus {
	return &Bus{
		limit:  queueLimit,
		logger: slog.With("component", "event_bus"),
		subs:   make(map[int]*Subscription),
	}
}

// Subscribe registers a subscriber. An empty kind list receives everything.
// The returned subscription must be drained via Events() and released with
// Close(); an abandoned subscription pins its inbox until the bus closes.
func (b *Bus) Subscribe(name string, kinds ...Kind) *Subscription {
	sub := &Subscription{
		name:   name,
		bus:    b,
		out:    make(chan Event),
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
	if len(kinds) > 0 {
		sub.kinds = make(map[Kind]struct{}, len(kinds))
		for _, k := range kinds {
			sub.kinds[k] = struct{}{}
		}
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		// Closed bus: hand back an already-closed subscription so callers
		// shutting down concurrently don't need a special case.
		close(sub.closed)
		close(sub.out)
		return sub
	}
	b.nextID++
	sub.id = b.nextID
	b.subs[sub.id] = sub
	b.mu.Unlock()

	go sub.pump()
	return sub
}

// Publish enqueues the event on every matching subscriber. Never blocks:
// a full inbox drops its oldest entry and records the loss for a lagged
// marker.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	subs := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		if sub.matches(ev.Kind) {
			sub.enqueue(ev, b.limit)
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close shuts down every subscription. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

// Subscription is one subscriber's bounded inbox plus the pump goroutine
// that drains it onto the Events channel.
type Subscription struct {
	name string
	id   int
	bus  *Bus

	kinds map[Kind]struct{} // nil = all kinds

	mu      sync.Mutex
	queue   []Event
	dropped int

	out       chan Event
	notify    chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

// Events is the delivery channel. Closed when the subscription closes.
func (s *Subscription) Events() <-chan Event {
	return s.out
}

// Close unsubscribes. Safe to call multiple times and concurrently with
// delivery; pending buffered events are discarded.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		if s.bus != nil {
			s.bus.remove(s.id)
		}
	})
}

func (s *Subscription) matches(k Kind) bool {
	if s.kinds == nil {
		return true
	}
	_, ok := s.kinds[k]
	return ok
}

func (s *Subscription) enqueue(ev Event, limit int) {
	s.mu.Lock()
	select {
	case <-s.closed:
		s.mu.Unlock()
		return
	default:
	}
	if len(s.queue) >= limit {
		// Drop-oldest: newer state supersedes older state, and the lagged
		// marker tells the subscriber to resync from the Store anyway.
		copy(s.queue, s.queue[1:])
		s.queue = s.queue[:len(s.queue)-1]
		s.dropped++
	}
	s.queue = append(s.queue, ev)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// pump drains the inbox onto the out channel, injecting a lagged marker
// ahead of newer events whenever drops occurred.
func (s *Subscription) pump() {
	defer close(s.out)

	for {
		select {
		case <-s.closed:
			return
		case <-s.notify:
		}

		for {
			ev, dropped, ok := s.next()
			if !ok {
				break
			}
			if dropped > 0 {
				select {
				case s.out <- laggedEvent(dropped):
				case <-s.closed:
					return
				}
			}
			select {
			case s.out <- ev:
			case <-s.closed:
				return
			}
		}
	}
}

// next pops the head of the inbox along with the dropped count accumulated
// before it. ok is false when the inbox is empty.
func (s *Subscription) next() (ev Event, dropped int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Event{}, 0, false
	}
	ev = s.queue[0]
	s.queue = s.queue[1:]
	dropped = s.dropped
	s.dropped = 0
	return ev, dropped, true
}

func laggedEvent(dropped int) Event {
	payload := LaggedPayload{
		BasePayload: BasePayload{
			Type:      string(KindLagged),
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Dropped: dropped,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// LaggedPayload is a flat struct; this cannot fail.
		data = []byte(`{"type":"subscription.lagged"}`)
	}
	return Event{Kind: KindLagged, Data: data}
}
