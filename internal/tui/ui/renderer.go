// Package ui renders the application state.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasktracker/internal/tui/components"
	"github.com/hy4ri/tasktracker/internal/tui/state"
	"github.com/hy4ri/tasktracker/internal/tui/styles"
)

// Header text.
const (
	AppTitle    = "Task Manager"
	AppSubtitle = "Manage your tasks efficiently"
)

// Prompt text.
const (
	LoadingText   = "Loading tasks..."
	DeletePrompt  = "Are you sure you want to delete this task? (y/N)"
	helpCloseHint = "Press ? or esc to close"
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.ShowHelp {
		return r.renderHelp()
	}

	formWidth, listWidth, bodyHeight := r.Layout()

	var body string
	if r.ConfirmDelete {
		body = lipgloss.Place(r.Width, bodyHeight, lipgloss.Center, lipgloss.Center, r.renderDeleteDialog())
	} else {
		form := r.renderFormPane(formWidth, bodyHeight)
		list := r.renderListPane(listWidth, bodyHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, list)
	}

	sections := []string{r.renderHeader()}
	if banner := components.RenderErrorBanner(r.ErrMsg, r.Width); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, body, r.renderStatusBar(), r.Help.ShortHelpView(r.Keymap.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) renderHeader() string {
	title := styles.Title.Render(AppTitle) + "  " + styles.Subtitle.Render(AppSubtitle)
	return title + "\n"
}

func (r *Renderer) renderFormPane(width, height int) string {
	content := components.RenderTaskForm(r.TaskForm, r.FocusedPane == state.PaneForm)
	style := styles.Pane
	if r.FocusedPane == state.PaneForm {
		style = styles.PaneFocused
	}
	return style.
		Width(width - 2).
		Height(height - 2).
		Render(content)
}

func (r *Renderer) renderListPane(width, height int) string {
	filterBar := components.RenderFilterBar(r.Filter, r.FilterBar, r.FocusedPane == state.PaneFilter)

	var list string
	if r.Loading && len(r.Tasks) == 0 {
		list = r.Spinner.View() + " " + LoadingText
	} else {
		list = r.renderTaskViewport(width-4, height-6)
	}

	// The filter bar and the list share one pane.
	style := styles.PaneFocused
	if r.FocusedPane == state.PaneForm {
		style = styles.Pane
	}
	return style.
		Width(width - 2).
		Height(height - 2).
		Render(filterBar + "\n\n" + list)
}

// renderTaskViewport renders the task list and scrolls the viewport so the
// selected task stays visible.
func (r *Renderer) renderTaskViewport(width, height int) string {
	view := components.RenderTaskList(r.Tasks, r.Now(), r.TaskCursor, width)
	if !r.ViewportReady {
		return view.Content
	}

	if height < 5 {
		height = 5
	}
	r.TaskViewport.Width = width
	r.TaskViewport.Height = height
	r.TaskViewport.SetContent(view.Content)

	if r.TaskCursor >= 0 && r.TaskCursor < len(view.Offsets) {
		top := view.Offsets[r.TaskCursor]
		bottom := lipgloss.Height(view.Content) - 1
		if r.TaskCursor+1 < len(view.Offsets) {
			bottom = view.Offsets[r.TaskCursor+1] - 1
		}
		if r.TaskCursor == 0 {
			// Keep the list header in view above the first task.
			top = 0
		}

		switch {
		case top < r.TaskViewport.YOffset:
			r.TaskViewport.SetYOffset(top)
		case bottom >= r.TaskViewport.YOffset+r.TaskViewport.Height:
			r.TaskViewport.SetYOffset(bottom - r.TaskViewport.Height + 1)
		}
	}

	return r.TaskViewport.View()
}

func (r *Renderer) renderDeleteDialog() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Delete Task") + "\n\n")
	for i := range r.Tasks {
		if r.Tasks[i].ID == r.PendingDeleteID {
			b.WriteString(styles.TaskTitle.Render(r.Tasks[i].Title) + "\n\n")
			break
		}
	}
	b.WriteString(DeletePrompt)
	return styles.Dialog.Render(b.String())
}

func (r *Renderer) renderStatusBar() string {
	left := ""
	switch {
	case r.Loading:
		left = r.Spinner.View() + " " + LoadingText
	case r.StatusMsg != "":
		left = styles.StatusBarSuccess.Render(strings.ReplaceAll(r.StatusMsg, "\n", " "))
	}

	right := fmt.Sprintf("%d tasks", len(r.Tasks))
	if !r.Filter.IsDefault() {
		right += " (filtered)"
	}

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	spacing := r.Width - leftWidth - rightWidth - padding
	if spacing < 0 {
		spacing = 0
	}

	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}

func (r *Renderer) renderHelp() string {
	h := r.Help
	h.ShowAll = true

	content := styles.Title.Render("Keyboard Shortcuts") + "\n\n" +
		h.View(r.Keymap) + "\n\n" +
		styles.Subtitle.Render(helpCloseHint)

	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, styles.Dialog.Render(content))
}
