// Package ui is the Bubble Tea surface for the suggestion engine: a text
// input wired to engine queries and a dropdown drawing the engine's
// visible state.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"suggestbox/internal/domain"
	"suggestbox/internal/suggest"
)

// Model wires a textinput to an engine and renders the dropdown under it.
// The engine owns all suggestion state; the model only reflects it.
type Model[T any] struct {
	input    textinput.Model
	engine   *suggest.Engine[T]
	dropdown *Dropdown[T]
	styles   *Styles

	title        string
	lastSelected string
	width        int
	quitting     bool
}

// NewModel creates the UI model around an engine.
func NewModel[T any](engine *suggest.Engine[T], render RenderItem[T], styles *Styles) *Model[T] {
	if styles == nil {
		styles = DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "type to search"
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Focus()

	return &Model[T]{
		input:    ti,
		engine:   engine,
		dropdown: NewDropdown(render, styles),
		styles:   styles,
		title:    "suggestbox",
	}
}

// SetTitle sets the heading shown above the input.
func (m *Model[T]) SetTitle(title string) { m.title = title }

// SetMaxVisible bounds the dropdown rows.
func (m *Model[T]) SetMaxVisible(n int) { m.dropdown.SetMaxVisible(n) }

// SetWidth sets the input and panel width.
func (m *Model[T]) SetWidth(w int) {
	if w > 0 {
		m.width = w
		m.dropdown.SetWidth(w)
		m.input.Width = w - 4
	}
}

// Init focuses the input, which also triggers the engine focus path
// (lazy popular load, popular panel on empty query).
func (m *Model[T]) Init() tea.Cmd {
	m.engine.Focus()
	return textinput.Blink
}

// Update handles keys and forwarded engine events.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		m.SetWidth(w)
		return m, nil

	case EventMsg:
		// Engine state changed off the key path (async results, popular
		// load); View re-reads the engine, so just note selections.
		if sel, ok := msg.Event.(domain.ItemSelectedEvent); ok {
			m.lastSelected = sel.ID
			m.input.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			m.engine.Close()
			return m, tea.Quit

		case "esc":
			// Outside interaction: dismiss an open panel, quit otherwise.
			if m.engine.State().Open() {
				m.engine.Dismiss()
				return m, nil
			}
			m.quitting = true
			m.engine.Close()
			return m, tea.Quit

		case "down", "tab":
			m.engine.MoveNext()
			return m, nil

		case "up", "shift+tab":
			m.engine.MovePrev()
			return m, nil

		case "enter":
			m.engine.SelectHighlighted()
			m.input.SetValue(m.engine.Query())
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.engine.SetQuery(m.input.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View draws the title, input, dropdown, and status line.
func (m *Model[T]) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.styles.Heading.Render(m.title),
		m.styles.Input.Width(m.width).Render(m.input.View()),
	}

	if panel := m.dropdown.View(m.engine.State(), m.engine.Visible(), m.engine.HighlightedIndex()); panel != "" {
		sections = append(sections, panel)
	}

	if m.lastSelected != "" {
		sections = append(sections, m.styles.Hint.Render("picked: "+m.lastSelected))
	}
	sections = append(sections, m.styles.Hint.Render("up/down move · enter pick · esc dismiss · ctrl+c quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
