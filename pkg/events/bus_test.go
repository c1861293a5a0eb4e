package events

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()

	sub1 := bus.Subscribe("first")
	sub2 := bus.Subscribe("second")

	bus.Publish(Event{Kind: KindExecutionQueued, ExecutionID: "exec-1"})

	assert.Equal(t, "exec-1", recvEvent(t, sub1).ExecutionID)
	assert.Equal(t, "exec-1", recvEvent(t, sub2).ExecutionID)
}

func TestBusKindFilter(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()

	sub := bus.Subscribe("scheduler", KindExecutionQueued, KindExecutionCompleted)

	bus.Publish(Event{Kind: KindRunnerRegistered})
	bus.Publish(Event{Kind: KindExecutionQueued, ExecutionID: "exec-1"})
	bus.Publish(Event{Kind: KindQueueDepth})
	bus.Publish(Event{Kind: KindExecutionCompleted, ExecutionID: "exec-1"})

	assert.Equal(t, KindExecutionQueued, recvEvent(t, sub).Kind)
	assert.Equal(t, KindExecutionCompleted, recvEvent(t, sub).Kind)
}

func TestBusPreservesOrderPerSubscriber(t *testing.T) {
	bus := NewBus(64)
	defer bus.Close()

	sub := bus.Subscribe("ordered")
	for i := 0; i < 20; i++ {
		bus.Publish(Event{Kind: KindExecutionQueued, ExecutionID: fmt.Sprintf("exec-%d", i)})
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, fmt.Sprintf("exec-%d", i), recvEvent(t, sub).ExecutionID)
	}
}

func TestBusOverflowDropsOldestAndMarksLag(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	// Don't read until everything is published, so the inbox overflows.
	sub := bus.Subscribe("slow")
	for i := 0; i < 10; i++ {
		bus.Publish(Event{Kind: KindExecutionQueued, ExecutionID: fmt.Sprintf("exec-%d", i)})
	}

	// The pump may have forwarded a few events before the overflow; collect
	// everything that arrives and find the lagged marker.
	var kinds []Kind
	var lagged *LaggedPayload
	var after []string
	for {
		select {
		case ev := <-sub.Events():
			kinds = append(kinds, ev.Kind)
			if ev.Kind == KindLagged {
				var p LaggedPayload
				require.NoError(t, json.Unmarshal(ev.Data, &p))
				lagged = &p
			} else if lagged != nil {
				after = append(after, ev.ExecutionID)
			}
		case <-time.After(200 * time.Millisecond):
			goto done
		}
	}
done:
	require.NotNil(t, lagged, "expected a lagged marker, got kinds %v", kinds)
	assert.Positive(t, lagged.Dropped)
	// Whatever survived after the marker is the newest tail, still in order.
	assert.Equal(t, "exec-9", after[len(after)-1])
}

func TestBusSubscriptionClose(t *testing.T) {
	bus := NewBus(16)
	defer bus.Close()

	sub := bus.Subscribe("short-lived")
	require.Equal(t, 1, bus.SubscriberCount())

	sub.Close()
	sub.Close() // idempotent

	assert.Equal(t, 0, bus.SubscriberCount())

	// Publishing after close must not panic or block.
	bus.Publish(Event{Kind: KindExecutionQueued})

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok, "closed subscription should deliver nothing")
	case <-time.After(2 * time.Second):
		t.Fatal("subscription channel never closed")
	}
}

func TestBusCloseShutsDownSubscribers(t *testing.T) {
	bus := NewBus(16)
	sub := bus.Subscribe("doomed")

	bus.Close()
	bus.Close() // idempotent

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription channel never closed")
	}

	// Subscribing to a closed bus yields an already-closed subscription.
	late := bus.Subscribe("late")
	_, ok := <-late.Events()
	assert.False(t, ok)
}
