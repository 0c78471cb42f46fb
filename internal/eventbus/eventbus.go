package eventbus

import (
	"runtime/debug"
	"sync"

	"suggestbox/internal/domain"
	"suggestbox/internal/logger"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryChanged      = domain.EventQueryChanged
	EventFetchDispatched   = domain.EventFetchDispatched
	EventResultsApplied    = domain.EventResultsApplied
	EventResponseDiscarded = domain.EventResponseDiscarded
	EventFetchFailed       = domain.EventFetchFailed
	EventPopularLoaded     = domain.EventPopularLoaded
	EventVisibilityChanged = domain.EventVisibilityChanged
	EventItemSelected      = domain.EventItemSelected
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
	EventError             = domain.EventError
)

// Re-export domain event types
type QueryChangedEvent = domain.QueryChangedEvent
type FetchDispatchedEvent = domain.FetchDispatchedEvent
type ResultsAppliedEvent = domain.ResultsAppliedEvent
type ResponseDiscardedEvent = domain.ResponseDiscardedEvent
type FetchFailedEvent = domain.FetchFailedEvent
type PopularLoadedEvent = domain.PopularLoadedEvent
type VisibilityChangedEvent = domain.VisibilityChangedEvent
type ItemSelectedEvent = domain.ItemSelectedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscription pairs a handler with an id so unsubscribe can find it again
type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    uint64
	handlers  map[EventType][]subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Warn("event bus channel full, dropping event", "type", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without the lock held
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				b.invoke(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// invoke calls a handler, absorbing panics so one bad subscriber cannot
// take the dispatcher down.
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("event handler panic", "type", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

var log = logger.New("bus")

// NullBus is a no-op implementation of EventBus for callers that do not
// care about engine events.
type NullBus struct{}

func (NullBus) Publish(event DomainEvent)                                 {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() { return func() {} }
