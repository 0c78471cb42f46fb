package ui

import "suggestbox/internal/eventbus"

// EventMsg wraps a domain event for the UI. The cmd forwards bus events
// into the Bubble Tea program through this message; Update reacts by
// re-reading engine state.
type EventMsg struct {
	Event eventbus.DomainEvent
}
