package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"suggestbox/internal/domain"
)

func collect(t *testing.T, bus EventBus, et EventType) func() []DomainEvent {
	t.Helper()
	var mu sync.Mutex
	var got []DomainEvent
	bus.Subscribe(et, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})
	return func() []DomainEvent {
		mu.Lock()
		defer mu.Unlock()
		out := make([]DomainEvent, len(got))
		copy(out, got)
		return out
	}
}

func eventually(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	bus := New()
	got := collect(t, bus, EventQueryChanged)

	bus.Publish(QueryChangedEvent{Query: "ap"})

	require.True(t, eventually(t, func() bool { return len(got()) == 1 }))
	require.Equal(t, QueryChangedEvent{Query: "ap"}, got()[0])
}

func TestSubscribersAreTypeScoped(t *testing.T) {
	t.Parallel()

	bus := New()
	got := collect(t, bus, EventItemSelected)

	bus.Publish(QueryChangedEvent{Query: "x"})
	bus.Publish(ItemSelectedEvent{ID: "a"})

	require.True(t, eventually(t, func() bool { return len(got()) == 1 }))
	require.Equal(t, ItemSelectedEvent{ID: "a"}, got()[0])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := New()
	var mu sync.Mutex
	count := 0
	unsub := bus.Subscribe(EventQueryChanged, func(DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		count++
	})

	bus.Publish(QueryChangedEvent{Query: "one"})
	require.True(t, eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count == 1
	}))

	unsub()
	bus.Publish(QueryChangedEvent{Query: "two"})
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, count)
}

func TestEventOrderIsPreserved(t *testing.T) {
	t.Parallel()

	bus := New()
	got := collect(t, bus, EventVisibilityChanged)

	bus.Publish(domain.VisibilityChangedEvent{From: domain.StateClosed, To: domain.StateOpenLoading})
	bus.Publish(domain.VisibilityChangedEvent{From: domain.StateOpenLoading, To: domain.StateOpenResults})

	require.True(t, eventually(t, func() bool { return len(got()) == 2 }))
	first := got()[0].(domain.VisibilityChangedEvent)
	second := got()[1].(domain.VisibilityChangedEvent)
	require.Equal(t, domain.StateOpenLoading, first.To)
	require.Equal(t, domain.StateOpenResults, second.To)
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	t.Parallel()

	bus := New()
	bus.Subscribe(EventQueryChanged, func(DomainEvent) { panic("bad subscriber") })
	got := collect(t, bus, EventQueryChanged)

	bus.Publish(QueryChangedEvent{Query: "x"})
	bus.Publish(QueryChangedEvent{Query: "y"})

	require.True(t, eventually(t, func() bool { return len(got()) == 2 }))
}

func TestNullBusIsInert(t *testing.T) {
	t.Parallel()

	var bus NullBus
	unsub := bus.Subscribe(EventQueryChanged, func(DomainEvent) { t.Fatal("must never fire") })
	bus.Publish(QueryChangedEvent{Query: "x"})
	unsub()
}
