package domain

// VisibilityState describes what the suggestion panel is currently showing.
// Exactly one state holds at any time; transitions happen only through
// engine operations.
type VisibilityState int

const (
	// StateClosed means the panel is not shown.
	StateClosed VisibilityState = iota
	// StateOpenPopular means the panel shows the popular/default list.
	StateOpenPopular
	// StateOpenLoading means an async lookup is in flight.
	StateOpenLoading
	// StateOpenResults means the panel shows results for the current query.
	StateOpenResults
	// StateOpenEmpty means the current query produced no results.
	StateOpenEmpty
)

func (s VisibilityState) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpenPopular:
		return "OpenPopular"
	case StateOpenLoading:
		return "OpenLoading"
	case StateOpenResults:
		return "OpenResults"
	case StateOpenEmpty:
		return "OpenEmpty"
	default:
		return "Unknown"
	}
}

// Open reports whether the panel is visible in this state.
func (s VisibilityState) Open() bool {
	return s != StateClosed
}

// PopularPolicy controls when the popular/default list is loaded.
type PopularPolicy int

const (
	// PopularLazy loads the popular list on first focus.
	PopularLazy PopularPolicy = iota
	// PopularEager loads the popular list when the engine is constructed.
	PopularEager
)

func (p PopularPolicy) String() string {
	if p == PopularEager {
		return "eager"
	}
	return "lazy"
}
