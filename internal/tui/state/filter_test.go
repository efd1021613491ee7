package state

import (
	"testing"

	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()
	assert.Empty(t, f.Status)
	assert.Empty(t, f.Priority)
	assert.Equal(t, api.SortByCreatedAt, f.SortBy)
	assert.True(t, f.IsDefault())
}

func TestFilterWithReplacesOneField(t *testing.T) {
	f := DefaultFilter().With(FilterStatus, "completed")
	assert.Equal(t, Filter{Status: api.StatusCompleted, SortBy: api.SortByCreatedAt}, f)

	f = f.With(FilterPriority, "high")
	assert.Equal(t, Filter{Status: api.StatusCompleted, Priority: api.PriorityHigh, SortBy: api.SortByCreatedAt}, f)

	f = f.With(FilterSort, "dueDate")
	assert.Equal(t, api.SortByDueDate, f.SortBy)
	assert.Equal(t, api.StatusCompleted, f.Status)

	f = f.With(FilterStatus, "")
	assert.Empty(t, f.Status)
	assert.Equal(t, api.PriorityHigh, f.Priority)
}

func TestFilterCycle(t *testing.T) {
	f := DefaultFilter()

	f = f.Cycle(FilterStatus, 1)
	assert.Equal(t, api.StatusPending, f.Status)
	f = f.Cycle(FilterStatus, -2)
	assert.Equal(t, api.StatusCompleted, f.Status)

	f = f.Cycle(FilterPriority, -1)
	assert.Equal(t, api.PriorityHigh, f.Priority)

	f = f.Cycle(FilterSort, 1)
	assert.Equal(t, api.SortByDueDate, f.SortBy)
	f = f.Cycle(FilterSort, 2)
	assert.Equal(t, api.SortByCreatedAt, f.SortBy)
}

func TestFilterQueryCarriesAllFields(t *testing.T) {
	f := Filter{Status: api.StatusPending, Priority: api.PriorityLow, SortBy: api.SortByPriority}
	assert.Equal(t, api.TaskFilter{Status: api.StatusPending, Priority: api.PriorityLow, SortBy: api.SortByPriority}, f.Query())
}

func TestFilterBarFocusWraps(t *testing.T) {
	var b FilterBar
	b.Prev()
	assert.Equal(t, FilterSort, b.Focus)
	b.Next()
	assert.Equal(t, FilterStatus, b.Focus)
}

func TestFilterClearRestoresDefaults(t *testing.T) {
	f := Filter{Status: api.StatusCompleted, Priority: api.PriorityHigh, SortBy: api.SortByPriority}
	assert.Equal(t, DefaultFilter(), f.Clear())
	assert.True(t, f.Clear().IsDefault())
}
