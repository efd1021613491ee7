package state

import "github.com/hy4ri/tasktracker/internal/api"

// FilterField identifies one selector of the filter bar.
type FilterField int

const (
	FilterStatus FilterField = iota
	FilterPriority
	FilterSort
)

const filterFieldCount = 3

// Selector option lists. The empty value means "no restriction".
var (
	statusFilterOptions   = []api.Status{"", api.StatusPending, api.StatusInProgress, api.StatusCompleted}
	priorityFilterOptions = []api.Priority{"", api.PriorityLow, api.PriorityMedium, api.PriorityHigh}
)

// Filter is the client-side listing criteria applied to the next fetch.
type Filter struct {
	Status   api.Status
	Priority api.Priority
	SortBy   api.SortBy
}

// DefaultFilter returns no status/priority restriction, sorted by creation date.
func DefaultFilter() Filter {
	return Filter{SortBy: api.SortByCreatedAt}
}

// With returns a copy of f with exactly one field replaced.
func (f Filter) With(field FilterField, value string) Filter {
	switch field {
	case FilterStatus:
		f.Status = api.Status(value)
	case FilterPriority:
		f.Priority = api.Priority(value)
	case FilterSort:
		f.SortBy = api.SortBy(value)
	}
	return f
}

// Cycle returns a copy of f with field moved delta steps through its options.
func (f Filter) Cycle(field FilterField, delta int) Filter {
	switch field {
	case FilterStatus:
		f.Status = cycle(statusFilterOptions, f.Status, delta)
	case FilterPriority:
		f.Priority = cycle(priorityFilterOptions, f.Priority, delta)
	case FilterSort:
		f.SortBy = cycle(api.SortKeys, f.SortBy, delta)
	}
	return f
}

// Clear returns the default filter.
func (f Filter) Clear() Filter {
	return DefaultFilter()
}

// IsDefault reports whether f equals DefaultFilter.
func (f Filter) IsDefault() bool {
	return f == DefaultFilter()
}

// Query converts f into API query parameters.
func (f Filter) Query() api.TaskFilter {
	return api.TaskFilter{
		Status:   f.Status,
		Priority: f.Priority,
		SortBy:   f.SortBy,
	}
}

// FilterBar tracks which selector has focus.
type FilterBar struct {
	Focus FilterField
}

// Next moves focus to the next selector.
func (b *FilterBar) Next() {
	b.Focus = (b.Focus + 1) % filterFieldCount
}

// Prev moves focus to the previous selector.
func (b *FilterBar) Prev() {
	b.Focus = (b.Focus - 1 + filterFieldCount) % filterFieldCount
}

// cycle steps through values starting at cur, wrapping at both ends.
// An unknown cur starts from the first value.
func cycle[T comparable](values []T, cur T, delta int) T {
	if len(values) == 0 {
		return cur
	}
	idx := 0
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}
