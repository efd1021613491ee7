package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/tui/styles"
)

// Empty-state text.
const (
	EmptyTitle = "No tasks found"
	EmptyHint  = "Create your first task to get started!"
)

// TaskListView is a rendered task list.
type TaskListView struct {
	Content string
	// Offsets holds the first line of each task block, in task order.
	Offsets []int
}

// RenderTaskList renders tasks in the order given. cursor marks the
// selected task; pass -1 for none.
func RenderTaskList(tasks []api.Task, now time.Time, cursor, width int) TaskListView {
	if len(tasks) == 0 {
		return TaskListView{
			Content: styles.Title.Render(EmptyTitle) + "\n" + styles.Subtitle.Render(EmptyHint),
		}
	}

	var b strings.Builder
	offsets := make([]int, 0, len(tasks))

	header := styles.Title.Render(fmt.Sprintf("Tasks (%d)", len(tasks)))
	b.WriteString(header)
	b.WriteString("\n")
	line := lipgloss.Height(header)

	for i, t := range tasks {
		b.WriteString("\n")
		line++

		offsets = append(offsets, line)
		block := RenderTaskItem(NewTaskItemView(t, now), width, i == cursor)
		b.WriteString(block)
		b.WriteString("\n")
		line += lipgloss.Height(block)
	}

	return TaskListView{Content: b.String(), Offsets: offsets}
}
