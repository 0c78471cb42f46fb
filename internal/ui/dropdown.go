package ui

import (
	"strings"

	"suggestbox/internal/domain"
)

// RenderItem renders one candidate row. The engine never inspects items
// beyond their identifier, so how a row looks is entirely the caller's.
type RenderItem[T any] func(item T, selected bool) string

// Dropdown renders the suggestion panel: a scrolling window of candidate
// rows with one highlighted, or a loading/empty notice, or the popular
// list under a heading. It holds no suggestion state of its own; the
// engine is the single owner and the dropdown just draws a snapshot.
type Dropdown[T any] struct {
	render     RenderItem[T]
	styles     *Styles
	maxVisible int
	width      int
}

// NewDropdown creates a dropdown with the given row renderer.
func NewDropdown[T any](render RenderItem[T], styles *Styles) *Dropdown[T] {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Dropdown[T]{
		render:     render,
		styles:     styles,
		maxVisible: 8,
		width:      50,
	}
}

// SetMaxVisible bounds the number of rows drawn at once.
func (d *Dropdown[T]) SetMaxVisible(n int) {
	if n > 0 {
		d.maxVisible = n
	}
}

// SetWidth sets the panel width.
func (d *Dropdown[T]) SetWidth(w int) {
	if w > 0 {
		d.width = w
	}
}

// View draws the panel for the given engine snapshot. Closed state draws
// nothing.
func (d *Dropdown[T]) View(state domain.VisibilityState, items []T, highlighted int) string {
	switch state {
	case domain.StateClosed:
		return ""
	case domain.StateOpenLoading:
		return d.panel(d.styles.Hint.Render("searching..."))
	case domain.StateOpenEmpty:
		return d.panel(d.styles.Hint.Render("no matches"))
	}

	if len(items) == 0 {
		return ""
	}

	start, end := d.window(len(items), highlighted)

	var rows []string
	if state == domain.StateOpenPopular {
		rows = append(rows, d.styles.Heading.Render("popular"))
	}
	for i := start; i < end; i++ {
		sel := i == highlighted
		row := d.render(items[i], sel)
		if sel {
			rows = append(rows, d.styles.RowSelected.Render("> "+row))
		} else {
			rows = append(rows, d.styles.Row.Render("  "+row))
		}
	}

	return d.panel(strings.Join(rows, "\n"))
}

// window computes the visible slice bounds, keeping the highlighted row
// centered once the list outgrows the window.
func (d *Dropdown[T]) window(n, highlighted int) (int, int) {
	if n <= d.maxVisible {
		return 0, n
	}

	start := highlighted - d.maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + d.maxVisible
	if end > n {
		end = n
		start = end - d.maxVisible
	}
	return start, end
}

func (d *Dropdown[T]) panel(content string) string {
	return d.styles.Panel.Width(d.width).MaxWidth(d.width).Render(content)
}
