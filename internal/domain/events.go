package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged      EventType = "QueryChanged"
	EventFetchDispatched   EventType = "FetchDispatched"
	EventResultsApplied    EventType = "ResultsApplied"
	EventResponseDiscarded EventType = "ResponseDiscarded"
	EventFetchFailed       EventType = "FetchFailed"
	EventPopularLoaded     EventType = "PopularLoaded"
	EventVisibilityChanged EventType = "VisibilityChanged"
	EventItemSelected      EventType = "ItemSelected"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted whenever the engine accepts a new query value.
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// FetchDispatchedEvent is emitted when an async lookup leaves the debouncer
// and is handed to the fetch function. Token identifies the request
// generation; stale responses are detected by comparing against it.
type FetchDispatchedEvent struct {
	Query string
	Token uint64
}

func (e FetchDispatchedEvent) Type() EventType { return EventFetchDispatched }

// ResultsAppliedEvent is emitted when a response survives the staleness
// check and becomes the visible result list.
type ResultsAppliedEvent struct {
	Query string
	Token uint64
	Count int
}

func (e ResultsAppliedEvent) Type() EventType { return EventResultsApplied }

// ResponseDiscardedEvent is emitted when a response arrives for a request
// that has been superseded by a newer dispatch.
type ResponseDiscardedEvent struct {
	Query  string
	Token  uint64 // token of the discarded response
	Latest uint64 // token of the newest dispatch at arrival time
}

func (e ResponseDiscardedEvent) Type() EventType { return EventResponseDiscarded }

// FetchFailedEvent is emitted when an async lookup returns an error. The
// failure is absorbed by the engine and displayed as an empty result set.
type FetchFailedEvent struct {
	Query string
	Token uint64
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// PopularLoadedEvent is emitted once the popular/default list becomes
// available, whether fetched or supplied statically.
type PopularLoadedEvent struct {
	Count int
}

func (e PopularLoadedEvent) Type() EventType { return EventPopularLoaded }

// VisibilityChangedEvent is emitted on every panel state transition.
type VisibilityChangedEvent struct {
	From VisibilityState
	To   VisibilityState
}

func (e VisibilityChangedEvent) Type() EventType { return EventVisibilityChanged }

// ItemSelectedEvent is emitted after the selection callback has run and the
// engine has reset itself.
type ItemSelectedEvent struct {
	ID string
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
