package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"suggestbox/internal/domain"
)

func renderPlain(s string, selected bool) string { return s }

func newTestDropdown() *Dropdown[string] {
	d := NewDropdown(renderPlain, DefaultStyles())
	d.SetMaxVisible(3)
	d.SetWidth(30)
	return d
}

func TestDropdownClosedRendersNothing(t *testing.T) {
	t.Parallel()
	d := newTestDropdown()
	require.Empty(t, d.View(domain.StateClosed, []string{"a"}, 0))
}

func TestDropdownLoadingAndEmptyNotices(t *testing.T) {
	t.Parallel()
	d := newTestDropdown()

	require.Contains(t, d.View(domain.StateOpenLoading, nil, -1), "searching")
	require.Contains(t, d.View(domain.StateOpenEmpty, nil, -1), "no matches")
}

func TestDropdownRendersRowsWithHighlight(t *testing.T) {
	t.Parallel()
	d := newTestDropdown()

	out := d.View(domain.StateOpenResults, []string{"alpha", "beta"}, 1)
	require.Contains(t, out, "alpha")
	require.Contains(t, out, "> beta")
}

func TestDropdownPopularHeading(t *testing.T) {
	t.Parallel()
	d := newTestDropdown()

	out := d.View(domain.StateOpenPopular, []string{"alpha"}, 0)
	require.Contains(t, out, "popular")
	require.Contains(t, out, "alpha")
}

func TestDropdownWindowCentersHighlight(t *testing.T) {
	t.Parallel()
	d := newTestDropdown()

	tests := []struct {
		n, highlighted       int
		wantStart, wantEnd   int
	}{
		{2, 0, 0, 2},   // fits entirely
		{10, 0, 0, 3},  // top of list
		{10, 5, 4, 7},  // centered
		{10, 9, 7, 10}, // pinned to the end
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d_h=%d", tt.n, tt.highlighted), func(t *testing.T) {
			start, end := d.window(tt.n, tt.highlighted)
			require.Equal(t, tt.wantStart, start)
			require.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestDropdownWindowBoundsRowCount(t *testing.T) {
	t.Parallel()
	d := newTestDropdown()

	items := []string{"r0", "r1", "r2", "r3", "r4", "r5"}
	out := d.View(domain.StateOpenResults, items, 0)

	shown := 0
	for _, it := range items {
		if strings.Contains(out, it) {
			shown++
		}
	}
	require.Equal(t, 3, shown)
}
