package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/tui/styles"
)

// TaskItemView is the display projection of one task, computed from the
// task fields and the current time only.
type TaskItemView struct {
	Task          api.Task
	DueLabel      string
	Overdue       bool
	PriorityClass string
	StatusClass   string
}

// NewTaskItemView computes the display fields of t at now.
func NewTaskItemView(t api.Task, now time.Time) TaskItemView {
	return TaskItemView{
		Task:          t,
		DueLabel:      t.DueLabel(),
		Overdue:       t.IsOverdue(now),
		PriorityClass: PriorityClass(t.Priority),
		StatusClass:   StatusClass(t.Status),
	}
}

// PriorityClass returns the badge class for a priority.
func PriorityClass(p api.Priority) string {
	return "priority-badge priority-" + string(p)
}

// StatusClass returns the badge class for a status.
func StatusClass(s api.Status) string {
	return "status-badge status-" + string(s)
}

// ItemClass returns the container class, "task-item" plus "overdue" when flagged.
func (v TaskItemView) ItemClass() string {
	if v.Overdue {
		return "task-item overdue"
	}
	return "task-item"
}

// RenderTaskItem renders one task block. width is the usable line width.
func RenderTaskItem(v TaskItemView, width int, selected bool) string {
	var b strings.Builder

	priority := styles.Badge(v.PriorityClass).Render(string(v.Task.Priority))
	status := styles.Badge(v.StatusClass).Render(string(v.Task.Status))
	badges := priority + " " + status

	titleWidth := width - 4 - len(v.Task.Priority) - len(v.Task.Status) - 5
	b.WriteString(styles.TaskTitle.Render(truncateString(v.Task.Title, titleWidth)))
	b.WriteString("  ")
	b.WriteString(badges)
	b.WriteString("\n")

	if v.Task.Description != "" {
		desc := strings.ReplaceAll(v.Task.Description, "\n", " ")
		b.WriteString(styles.TaskDescription.Render(truncateString(desc, width-4)))
		b.WriteString("\n")
	}

	b.WriteString(styles.TaskDue.Render(fmt.Sprintf("Due: %s", v.DueLabel)))
	if v.Overdue {
		b.WriteString("  ")
		b.WriteString(styles.OverdueLabel.Render("! Overdue"))
	}

	style := styles.Item(v.ItemClass())
	if selected {
		style = styles.TaskSelected
	}
	return style.Render(b.String())
}
