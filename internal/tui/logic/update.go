package logic

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/tui/state"
)

// Handler owns all state transitions. Every message is applied here, one
// at a time, so the task collection and error slot need no locking.
type Handler struct {
	*state.State
	ctx context.Context
}

// NewHandler creates a handler over s.
func NewHandler(s *state.State) *Handler {
	return NewHandlerWithContext(context.Background(), s)
}

// NewHandlerWithContext creates a handler whose requests use ctx.
func NewHandlerWithContext(ctx context.Context, s *state.State) *Handler {
	return &Handler{State: s, ctx: ctx}
}

// Init starts the spinner, the first fetch and the overdue check loop.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.FetchTasks(),
		checkDueCmd(),
	)
}

// Update applies msg to the state.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case tasksLoadedMsg:
		return h.handleTasksLoaded(msg)

	case fetchFailedMsg:
		return h.handleFetchFailed(msg)

	case taskCreatedMsg:
		return h.handleTaskCreated(msg)

	case taskUpdatedMsg:
		return h.handleTaskUpdated(msg)

	case taskDeletedMsg:
		return h.handleTaskDeleted(msg)

	case mutationFailedMsg:
		return h.handleMutationFailed(msg)

	case checkDueMsg:
		return h.handleCheckDue(msg)
	}

	// Forward non-key messages (like blink) to the form inputs.
	if h.FocusedPane == state.PaneForm {
		return h.TaskForm.Update(msg)
	}

	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap

	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// The delete prompt is modal: y confirms, anything else declines.
	if h.ConfirmDelete {
		if key.Matches(msg, km.Confirm) {
			return h.ConfirmDeletion()
		}
		h.CancelDeletion()
		return nil
	}

	if h.ShowHelp {
		if key.Matches(msg, km.Help, km.Cancel, km.Quit) {
			h.ShowHelp = false
		}
		return nil
	}

	if h.FocusedPane == state.PaneForm {
		return h.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit
	case key.Matches(msg, km.Help):
		h.ShowHelp = true
		return nil
	case key.Matches(msg, km.NextPane):
		h.FocusPane(h.FocusedPane.Next())
		return nil
	case key.Matches(msg, km.DismissError):
		h.DismissError()
		return nil
	case key.Matches(msg, km.Refresh):
		return h.FetchTasks()
	case key.Matches(msg, km.ClearFilters):
		return h.ClearFilters()
	case key.Matches(msg, km.Add):
		h.NewTask()
		return nil
	}

	if h.FocusedPane == state.PaneFilter {
		return h.handleFilterKey(msg)
	}
	return h.handleListKey(msg)
}

func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap

	switch {
	case key.Matches(msg, km.Up):
		h.moveCursor(-1)
	case key.Matches(msg, km.Down):
		h.moveCursor(1)
	case key.Matches(msg, km.Edit), msg.String() == "enter":
		if t := h.SelectedTask(); t != nil {
			h.StartEdit(*t)
		}
	case key.Matches(msg, km.Delete):
		if t := h.SelectedTask(); t != nil {
			h.RequestDelete(t.ID)
		}
	case key.Matches(msg, km.CycleStatus):
		if t := h.SelectedTask(); t != nil {
			return h.ChangeStatus(*t, nextStatus(t.Status))
		}
	case key.Matches(msg, km.SetPending):
		return h.changeSelectedStatus(api.StatusPending)
	case key.Matches(msg, km.SetProgress):
		return h.changeSelectedStatus(api.StatusInProgress)
	case key.Matches(msg, km.SetCompleted):
		return h.changeSelectedStatus(api.StatusCompleted)
	case key.Matches(msg, km.Yank):
		h.yankSelected()
	}
	return nil
}

func (h *Handler) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap

	switch {
	case key.Matches(msg, km.Up):
		h.FilterBar.Prev()
	case key.Matches(msg, km.Down):
		h.FilterBar.Next()
	case key.Matches(msg, km.Left):
		return h.SetFilter(h.Filter.Cycle(h.FilterBar.Focus, -1))
	case key.Matches(msg, km.Right), msg.String() == " ", msg.String() == "enter":
		return h.SetFilter(h.Filter.Cycle(h.FilterBar.Focus, 1))
	}
	return nil
}

func (h *Handler) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap

	switch {
	case key.Matches(msg, km.Cancel):
		if h.Editing != nil {
			h.CancelEdit()
		} else {
			h.FocusPane(state.PaneList)
		}
		return nil
	case key.Matches(msg, km.Submit):
		// Enter inserts a newline in the description.
		if msg.Type == tea.KeyEnter && h.TaskForm.FocusIndex == state.FormFieldDescription {
			break
		}
		return h.SubmitForm()
	}

	return h.TaskForm.Update(msg)
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	formWidth, listWidth, bodyHeight := h.Layout()

	vpHeight := bodyHeight - 6 // filter bar + pane borders
	if vpHeight < 5 {
		vpHeight = 5
	}
	vpWidth := listWidth - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	if !h.ViewportReady {
		h.TaskViewport = viewport.New(vpWidth, vpHeight)
		h.TaskViewport.Style = lipgloss.NewStyle()
		h.ViewportReady = true
	} else {
		h.TaskViewport.Width = vpWidth
		h.TaskViewport.Height = vpHeight
	}

	h.TaskForm.SetWidth(formWidth - 6)
	h.Help.Width = msg.Width

	return nil
}

func (h *Handler) moveCursor(delta int) {
	h.TaskCursor += delta
	h.ClampCursor()
}

// FocusPane moves keyboard focus to p.
func (h *Handler) FocusPane(p state.Pane) {
	h.FocusedPane = p
	if p == state.PaneForm {
		h.TaskForm.Focus(state.FormFieldTitle)
	}
}
