package suggest

import "suggestbox/internal/domain"

// The panel state machine:
//
//	Closed       -> OpenPopular   on focus with an empty query and a
//	                              non-empty popular list
//	Closed,
//	OpenPopular  -> OpenLoading   when a non-empty query dispatches an
//	                              async lookup
//	OpenLoading  -> OpenResults   accepted response is non-empty
//	OpenLoading  -> OpenEmpty     accepted response is empty
//	any Open*    -> Closed        dismissal, selection, or query cleared
//	                              with the popular-on-focus policy off
//	any Open*    -> OpenPopular   query cleared with the policy on and a
//	                              popular list present
//
// Transitions happen only inside engine operations with the engine mutex
// held; the machine lives as long as the engine.

// transition moves the panel to a new state and publishes the change.
// Self-transitions are silent.
func (e *Engine[T]) transition(to domain.VisibilityState) {
	if e.state == to {
		return
	}
	from := e.state
	e.state = to
	e.log.Debug("visibility", "from", from, "to", to)
	e.bus.Publish(domain.VisibilityChangedEvent{From: from, To: to})
}

// showDefaultLocked applies the empty-query rule: the popular list when
// the policy allows, a list exists, and the panel is open or the input
// focused; otherwise a closed panel. A closed, unfocused panel never
// reopens on a query clear.
func (e *Engine[T]) showDefaultLocked() {
	if e.opts.ShowPopularOnFocus && e.popular.available() && (e.state.Open() || e.focused) {
		e.visible = truncate(e.popular.items, e.opts.MaxResults)
		e.highlighted = 0
		e.transition(domain.StateOpenPopular)
		return
	}
	e.visible = nil
	e.highlighted = 0
	e.transition(domain.StateClosed)
}
