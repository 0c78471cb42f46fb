package suggest

import "context"

// popularState tracks the lifecycle of the popular/default list:
// uninitialized -> loading -> ready. There is no invalidation; the list is
// loaded at most once per engine lifetime.
type popularState int

const (
	popularUninit popularState = iota
	popularLoading
	popularReady
)

// popularList holds the fallback list shown when no query is present.
// It is mutated only under the owning engine's mutex.
type popularList[T any] struct {
	state popularState
	items []T
	fetch func(ctx context.Context) ([]T, error)
}

// newPopularList builds the list from an optional fetch function and an
// optional static fallback. A static list is ready immediately with no
// loading phase; with neither supplied the list is ready and empty, which
// downstream code treats as "no popular list".
func newPopularList[T any](fetch func(ctx context.Context) ([]T, error), static []T) *popularList[T] {
	p := &popularList[T]{fetch: fetch}
	if fetch == nil {
		p.items = static
		p.state = popularReady
	}
	return p
}

// available reports whether a non-empty list is ready to show.
func (p *popularList[T]) available() bool {
	return p.state == popularReady && len(p.items) > 0
}
