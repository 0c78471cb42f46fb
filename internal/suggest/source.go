package suggest

import "context"

// Source is the capability an engine instance is constructed with: either a
// synchronous filter over an in-memory collection, or an asynchronous fetch
// keyed by the query string. Exactly one is configured per engine; the
// sealed interface makes the mutual exclusivity a property of the type
// rather than a pair of nullable fields.
type Source[T any] interface {
	sealed()
}

// FilterSource filters a full in-memory candidate set on every keystroke.
// The predicate must be pure and synchronous; results are truncated to the
// engine's MaxResults. No debouncing or token bookkeeping happens on this
// path since there is no network cost and no concurrency hazard.
type FilterSource[T any] struct {
	Items     []T
	Predicate func(items []T, query string) []T
}

func (FilterSource[T]) sealed() {}

// FetchSource resolves queries through an asynchronous lookup, typically a
// remote endpoint. Dispatches are debounced and token-guarded; a failed
// fetch is absorbed and displayed as an empty result set.
type FetchSource[T any] struct {
	Fetch func(ctx context.Context, query string) ([]T, error)
}

func (FetchSource[T]) sealed() {}
