package suggest

import "errors"

// Constructor validation errors. An engine with nothing to search, no way
// to identify items, or nowhere to deliver a selection is a configuration
// bug and is rejected up front instead of silently doing nothing.
var (
	ErrNoSource        = errors.New("suggest: no source configured")
	ErrNoPredicate     = errors.New("suggest: filter source has no predicate")
	ErrNoFetch         = errors.New("suggest: fetch source has no fetch function")
	ErrNoIdentifier    = errors.New("suggest: no item identifier function")
	ErrNoSelectHandler = errors.New("suggest: no selection handler")
)
