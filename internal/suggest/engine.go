// Package suggest implements an incremental search-and-suggestion engine:
// free-text input in, a ranked bounded candidate list out. Candidates come
// from a synchronous filter over a local collection or an asynchronous
// fetch, with a popular/default list shown when no query is present.
// Keystrokes to an async source are debounced, and a monotonic request
// token discards responses that arrive after a newer dispatch.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/logger"
)

// Options are the engine tuning knobs. Start from DefaultOptions and
// override fields as needed; New fills zeroed numeric fields with defaults
// but leaves booleans as given.
type Options struct {
	// MaxResults bounds the visible candidate list. Default 10.
	MaxResults int
	// Debounce is the quiescence interval before an async dispatch.
	// Ignored for filter sources. Default 300ms.
	Debounce time.Duration
	// ShowPopularOnFocus shows the popular list when the query is empty.
	ShowPopularOnFocus bool
	// PopularLoad picks eager (at construction) or lazy (first focus)
	// loading of the popular list.
	PopularLoad domain.PopularPolicy
}

// DefaultOptions returns the standard engine tuning.
func DefaultOptions() Options {
	return Options{
		MaxResults:         10,
		Debounce:           300 * time.Millisecond,
		ShowPopularOnFocus: true,
		PopularLoad:        domain.PopularLazy,
	}
}

// Config carries everything a caller supplies to build an engine.
type Config[T any] struct {
	// Source is the search capability. Required; exactly one of
	// FilterSource or FetchSource.
	Source Source[T]
	// ID extracts the unique identifier of an item. Required. The engine
	// never inspects items beyond this.
	ID func(T) string
	// OnSelect receives the chosen item. Required.
	OnSelect func(T)
	// PopularFetch loads the popular list, invoked at most once. Optional.
	PopularFetch func(ctx context.Context) ([]T, error)
	// PopularItems is a static popular list used when PopularFetch is nil.
	// Optional.
	PopularItems []T
	// Bus receives engine events. Optional; nil means no events.
	Bus eventbus.EventBus
	// Logger overrides the default package logger. Optional.
	Logger *charmlog.Logger

	Options Options
}

// Engine owns all suggestion state for one input box: the current query,
// the visible candidate list, the panel visibility state, the request
// token, and the popular cache. All mutation goes through its methods;
// they are safe for concurrent use.
type Engine[T any] struct {
	mu sync.Mutex

	opts     Options
	source   Source[T]
	id       func(T) string
	onSelect func(T)
	bus      eventbus.EventBus
	log      *charmlog.Logger

	query       string
	token       uint64
	state       domain.VisibilityState
	visible     []T
	highlighted int
	focused     bool
	popular     *popularList[T]
	deb         *debouncer
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
}

// New validates the configuration and builds an engine. An engine with no
// source, identifier, or selection handler is rejected rather than
// silently never searching.
func New[T any](cfg Config[T]) (*Engine[T], error) {
	switch src := cfg.Source.(type) {
	case nil:
		return nil, ErrNoSource
	case FilterSource[T]:
		if src.Predicate == nil {
			return nil, ErrNoPredicate
		}
	case FetchSource[T]:
		if src.Fetch == nil {
			return nil, ErrNoFetch
		}
	}
	if cfg.ID == nil {
		return nil, ErrNoIdentifier
	}
	if cfg.OnSelect == nil {
		return nil, ErrNoSelectHandler
	}

	opts := cfg.Options
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultOptions().MaxResults
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultOptions().Debounce
	}

	bus := cfg.Bus
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	lg := cfg.Logger
	if lg == nil {
		lg = logger.New("suggest")
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine[T]{
		opts:     opts,
		source:   cfg.Source,
		id:       cfg.ID,
		onSelect: cfg.OnSelect,
		bus:      bus,
		log:      lg,
		state:    domain.StateClosed,
		popular:  newPopularList(cfg.PopularFetch, cfg.PopularItems),
		deb:      newDebouncer(opts.Debounce),
		ctx:      ctx,
		cancel:   cancel,
	}

	if opts.PopularLoad == domain.PopularEager {
		e.mu.Lock()
		e.loadPopularLocked()
		e.mu.Unlock()
	}
	return e, nil
}

// SetQuery accepts a new input value. The value is trimmed; empty means
// "no query" and resets to the popular list or a closed panel. A filter
// source runs immediately, a fetch source goes through the debouncer.
func (e *Engine[T]) SetQuery(raw string) {
	q := strings.TrimSpace(raw)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || q == e.query {
		return
	}
	e.query = q
	e.bus.Publish(domain.QueryChangedEvent{Query: q})

	if q == "" {
		e.deb.stop()
		e.token++ // supersede any in-flight lookup
		e.showDefaultLocked()
		return
	}

	switch src := e.source.(type) {
	case FilterSource[T]:
		e.visible = truncate(src.Predicate(src.Items, q), e.opts.MaxResults)
		e.highlighted = 0
		if len(e.visible) > 0 {
			e.transition(domain.StateOpenResults)
		} else {
			e.transition(domain.StateOpenEmpty)
		}
	case FetchSource[T]:
		// Loading is not shown while the timer is pending, only at
		// dispatch.
		e.deb.schedule(e.dispatch)
	}
}

// dispatch mints a request token and starts the async lookup for the
// query current at fire time. Runs on the debounce timer goroutine.
func (e *Engine[T]) dispatch() {
	e.mu.Lock()
	if e.closed || e.query == "" {
		e.mu.Unlock()
		return
	}
	src, ok := e.source.(FetchSource[T])
	if !ok {
		e.mu.Unlock()
		return
	}
	q := e.query
	e.token++
	t0 := e.token
	e.transition(domain.StateOpenLoading)
	e.bus.Publish(domain.FetchDispatchedEvent{Query: q, Token: t0})
	ctx := e.ctx
	e.mu.Unlock()

	e.log.Debug("dispatch", "query", q, "token", t0)
	go func() {
		items, err := src.Fetch(ctx, q)
		e.apply(t0, q, items, err)
	}()
}

// apply is the stale-response guard: a response is dropped unless its
// dispatch-time token still equals the current one. Only the most recently
// dispatched request's results ever become visible, regardless of arrival
// order.
func (e *Engine[T]) apply(t0 uint64, q string, items []T, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if t0 != e.token {
		e.log.Debug("discarding stale response", "query", q, "token", t0, "latest", e.token)
		e.bus.Publish(domain.ResponseDiscardedEvent{Query: q, Token: t0, Latest: e.token})
		return
	}
	if err != nil {
		// Absorbed: a failed lookup displays as no results.
		e.log.Warn("lookup failed", "query", q, "err", err)
		e.bus.Publish(domain.FetchFailedEvent{Query: q, Token: t0, Err: err})
		items = nil
	}

	e.visible = truncate(items, e.opts.MaxResults)
	e.highlighted = 0
	if len(e.visible) > 0 {
		e.transition(domain.StateOpenResults)
	} else {
		e.transition(domain.StateOpenEmpty)
	}
	e.bus.Publish(domain.ResultsAppliedEvent{Query: q, Token: t0, Count: len(e.visible)})
}

// Focus marks the input as focused, triggers the lazy popular load, and
// opens the popular list when the query is empty and a list exists.
func (e *Engine[T]) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.focused = true
	e.loadPopularLocked()

	if e.query == "" {
		if e.opts.ShowPopularOnFocus && e.popular.available() {
			e.visible = truncate(e.popular.items, e.opts.MaxResults)
			e.highlighted = 0
			e.transition(domain.StateOpenPopular)
		}
		return
	}
	if len(e.visible) > 0 {
		e.transition(domain.StateOpenResults)
	}
}

// loadPopularLocked triggers the popular fetch at most once. Requires e.mu.
func (e *Engine[T]) loadPopularLocked() {
	if e.popular.state != popularUninit {
		return
	}
	e.popular.state = popularLoading
	fetch := e.popular.fetch
	ctx := e.ctx

	go func() {
		items, err := fetch(ctx)
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed {
			return
		}
		if err != nil {
			// Degrades to "no popular list"; focus then keeps the panel
			// closed instead of erroring.
			e.log.Warn("popular list load failed", "err", err)
			items = nil
		}
		e.popular.items = items
		e.popular.state = popularReady
		e.bus.Publish(domain.PopularLoadedEvent{Count: len(items)})

		if e.focused && e.query == "" && e.opts.ShowPopularOnFocus && e.popular.available() {
			e.visible = truncate(e.popular.items, e.opts.MaxResults)
			e.highlighted = 0
			e.transition(domain.StateOpenPopular)
		}
	}()
}

// Select delivers the chosen item to the caller, then clears the query and
// closes the panel unconditionally, popular-list picks included. The
// callback runs without the engine lock held, so it may call back in.
func (e *Engine[T]) Select(item T) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	cb := e.onSelect
	e.mu.Unlock()

	cb(item)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.deb.stop()
	e.token++ // anything still in flight is now stale
	e.query = ""
	e.visible = nil
	e.highlighted = 0
	e.focused = false
	e.transition(domain.StateClosed)
	e.bus.Publish(domain.ItemSelectedEvent{ID: e.id(item)})
}

// SelectHighlighted selects the currently highlighted item, if any.
func (e *Engine[T]) SelectHighlighted() {
	item, ok := e.Highlighted()
	if !ok {
		return
	}
	e.Select(item)
}

// Dismiss closes the panel on an outside interaction without touching the
// query. Anything still in flight is superseded so a late response cannot
// reopen the panel.
func (e *Engine[T]) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.deb.stop()
	e.token++
	e.focused = false
	e.transition(domain.StateClosed)
}

// MoveNext advances the highlighted row, wrapping at the end.
func (e *Engine[T]) MoveNext() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.visible) == 0 {
		return
	}
	e.highlighted = (e.highlighted + 1) % len(e.visible)
}

// MovePrev moves the highlighted row back, wrapping at the start.
func (e *Engine[T]) MovePrev() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.visible) == 0 {
		return
	}
	e.highlighted--
	if e.highlighted < 0 {
		e.highlighted = len(e.visible) - 1
	}
}

// Query returns the current trimmed query.
func (e *Engine[T]) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// State returns the current panel visibility state.
func (e *Engine[T]) State() domain.VisibilityState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Visible returns a copy of the currently visible candidate list.
func (e *Engine[T]) Visible() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]T, len(e.visible))
	copy(out, e.visible)
	return out
}

// HighlightedIndex returns the index of the highlighted row, or -1 when
// nothing is visible.
func (e *Engine[T]) HighlightedIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.visible) == 0 {
		return -1
	}
	return e.highlighted
}

// Highlighted returns the highlighted item, if any.
func (e *Engine[T]) Highlighted() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.visible) == 0 {
		var zero T
		return zero, false
	}
	return e.visible[e.highlighted], true
}

/// Close disposes the engine: the pending debounce timer is stopped and
// in-flight lookups are cancelled. No dispatch can happen afterwards.
func (e *Engine[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.deb.stop()
	e.cancel()
	e.visible = nil
	e.transition(domain.StateClosed)
}

// truncate bounds a result list without copying.
func truncate[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}
