package components

import (
	"strings"

	"github.com/hy4ri/tasktracker/internal/tui/state"
	"github.com/hy4ri/tasktracker/internal/tui/styles"
)

// RenderTaskForm renders the create/edit form.
func RenderTaskForm(f *state.TaskForm, focused bool) string {
	var b strings.Builder

	title := "Create New Task"
	submit := "Create Task"
	if f.IsEditing() {
		title = "Edit Task"
		submit = "Update Task"
	}
	b.WriteString(styles.Title.Render(title) + "\n\n")

	label := func(index int, text string) string {
		if focused && f.FocusIndex == index {
			return styles.InputLabelFocused.Render(text)
		}
		return styles.InputLabel.Render(text)
	}

	b.WriteString(label(state.FormFieldTitle, "Title *") + "\n")
	b.WriteString(f.Title.View() + "\n\n")

	b.WriteString(label(state.FormFieldDescription, "Description") + "\n")
	b.WriteString(f.Description.View() + "\n\n")

	b.WriteString(label(state.FormFieldStatus, "Status") + " ‹ " + f.Status.Label() + " ›   ")
	b.WriteString(label(state.FormFieldPriority, "Priority") + " ‹ " + f.Priority.Label() + " ›\n\n")

	b.WriteString(label(state.FormFieldDue, "Due Date") + "\n")
	b.WriteString(f.Due.View() + "\n\n")

	button := styles.Button
	if focused && f.FocusIndex == state.FormFieldSubmit {
		button = styles.ButtonFocused
	}
	b.WriteString(button.Render(submit))
	if f.IsEditing() {
		b.WriteString("  " + styles.Subtitle.Render("esc: cancel"))
	}

	if f.Err != "" {
		b.WriteString("\n" + styles.InputError.Render(f.Err))
	}

	return b.String()
}
