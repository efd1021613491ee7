package components

import (
	"strings"

	"github.com/hy4ri/tasktracker/internal/tui/state"
	"github.com/hy4ri/tasktracker/internal/tui/styles"
)

// RenderFilterBar renders the three filter selectors on one line.
func RenderFilterBar(f state.Filter, bar state.FilterBar, focused bool) string {
	selectors := []struct {
		field state.FilterField
		label string
		value string
	}{
		{state.FilterStatus, "Status", f.Status.Label()},
		{state.FilterPriority, "Priority", f.Priority.Label()},
		{state.FilterSort, "Sort By", f.SortBy.Label()},
	}

	parts := make([]string, 0, len(selectors))
	for _, s := range selectors {
		label := styles.InputLabel.Render(s.label + ":")
		value := "‹ " + s.value + " ›"
		if focused && bar.Focus == s.field {
			label = styles.InputLabelFocused.Render(s.label + ":")
			value = styles.InputLabelFocused.Render(value)
		}
		parts = append(parts, label+" "+value)
	}

	line := strings.Join(parts, "   ")
	if !f.IsDefault() {
		line += "   " + styles.Subtitle.Render("(c: clear)")
	}
	return styles.Title.Render("Filter & Sort") + "\n" + line
}
