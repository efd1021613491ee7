package logic

import (
	"errors"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/tui/state"
	"github.com/sirupsen/logrus"
)

// handleTasksLoaded replaces the collection with the fetched one, unless a
// newer fetch has been issued since.
func (h *Handler) handleTasksLoaded(msg tasksLoadedMsg) tea.Cmd {
	if msg.gen != h.FetchGen {
		h.Log.WithFields(logrus.Fields{
			"generation": msg.gen,
			"latest":     h.FetchGen,
		}).Debug("discarding stale task list")
		return nil
	}

	h.Tasks = msg.tasks
	h.ErrMsg = ""
	h.Loading = false
	h.ClampCursor()

	h.Log.WithField("count", len(msg.tasks)).Debug("tasks loaded")

	return h.notifyOverdue(h.Now())
}

// handleFetchFailed records the error and keeps the previous collection.
func (h *Handler) handleFetchFailed(msg fetchFailedMsg) tea.Cmd {
	if msg.gen != h.FetchGen {
		return nil
	}

	h.Loading = false
	h.ErrMsg = apiMessage(msg.err, msgFetchFailed)
	logAPIError(h.Log, msg.err, "failed to fetch tasks")
	return nil
}

func (h *Handler) handleMutationFailed(msg mutationFailedMsg) tea.Cmd {
	h.StatusMsg = ""
	h.ErrMsg = apiMessage(msg.err, msg.fallback)
	logAPIError(h.Log.WithField("op", msg.op), msg.err, "task mutation failed")
	return nil
}

// logAPIError logs server faults as errors and rejected requests as warnings.
func logAPIError(log logrus.FieldLogger, err error, message string) {
	apiErr, ok := api.IsAPIError(err)
	switch {
	case !ok || apiErr.IsServerError():
		log.WithError(err).Error(message)
	case apiErr.IsNotFound():
		log.WithError(err).Warn(message + ": task no longer exists")
	default:
		log.WithError(err).Warn(message)
	}
}

// handleTaskCreated clears the draft, unless the user has moved on to
// editing a task while the create was in flight.
func (h *Handler) handleTaskCreated(msg taskCreatedMsg) tea.Cmd {
	if h.Editing == nil {
		h.TaskForm.Reset()
	}
	h.StatusMsg = "Task created"
	if msg.task != nil {
		h.Log.WithField("task_id", msg.task.ID).Info("task created")
	}
	return h.FetchTasks()
}

// handleTaskUpdated leaves edit mode only when the task being edited is
// still the one that was updated.
func (h *Handler) handleTaskUpdated(msg taskUpdatedMsg) tea.Cmd {
	if h.Editing != nil && h.Editing.ID == msg.id {
		h.Editing = nil
		h.TaskForm.Reset()
		if msg.fromForm {
			h.FocusPane(state.PaneList)
		}
	}
	h.StatusMsg = "Task updated"
	if msg.task != nil {
		h.Log.WithField("task_id", msg.task.ID).Info("task updated")
	}
	return h.FetchTasks()
}

func (h *Handler) handleTaskDeleted(msg taskDeletedMsg) tea.Cmd {
	if h.Editing != nil && h.Editing.ID == msg.id {
		h.Editing = nil
		h.TaskForm.Reset()
	}
	h.StatusMsg = "Task deleted"
	h.Log.WithField("task_id", msg.id).Info("task deleted")
	return h.FetchTasks()
}

// SubmitForm validates the draft and sends it as a create or an update.
// An invalid draft never reaches the API.
func (h *Handler) SubmitForm() tea.Cmd {
	f := h.TaskForm
	if err := f.Validate(); err != nil {
		f.Err = capitalize(err.Error())
		if errors.Is(err, state.ErrTitleRequired) {
			f.Focus(state.FormFieldTitle)
		}
		return nil
	}
	f.Err = ""

	in := f.ToInput()
	if h.Editing != nil {
		return h.UpdateTask(h.Editing.ID, api.UpdateFromInput(in), true)
	}
	return h.CreateTask(in)
}

// NewTask puts the form in blank create mode and focuses it.
func (h *Handler) NewTask() {
	if h.Editing != nil {
		h.Editing = nil
		h.TaskForm.Reset()
	}
	h.FocusPane(state.PaneForm)
}

// StartEdit loads t into the form. At most one task is edited at a time.
func (h *Handler) StartEdit(t api.Task) {
	h.Editing = &t
	h.TaskForm.LoadTask(h.Editing)
	h.FocusPane(state.PaneForm)
}

// CancelEdit resets the form to blank create mode.
func (h *Handler) CancelEdit() {
	h.Editing = nil
	h.TaskForm.Reset()
	h.FocusPane(state.PaneList)
}

// ChangeStatus updates only the status of t.
func (h *Handler) ChangeStatus(t api.Task, s api.Status) tea.Cmd {
	if t.Status == s {
		return nil
	}
	return h.UpdateTask(t.ID, api.StatusUpdate(s), false)
}

func (h *Handler) changeSelectedStatus(s api.Status) tea.Cmd {
	t := h.SelectedTask()
	if t == nil {
		return nil
	}
	return h.ChangeStatus(*t, s)
}

// RequestDelete asks for confirmation before deleting id.
func (h *Handler) RequestDelete(id string) {
	h.ConfirmDelete = true
	h.PendingDeleteID = id
}

// ConfirmDeletion deletes the pending task.
func (h *Handler) ConfirmDeletion() tea.Cmd {
	id := h.PendingDeleteID
	h.ConfirmDelete = false
	h.PendingDeleteID = ""
	if id == "" {
		return nil
	}
	return h.deleteTask(id)
}

// CancelDeletion drops the pending delete without sending anything.
func (h *Handler) CancelDeletion() {
	h.ConfirmDelete = false
	h.PendingDeleteID = ""
}

// SetFilter replaces the filter and refetches.
func (h *Handler) SetFilter(f state.Filter) tea.Cmd {
	h.Filter = f
	return h.FetchTasks()
}

// ClearFilters resets the filter to its defaults and refetches.
func (h *Handler) ClearFilters() tea.Cmd {
	return h.SetFilter(h.Filter.Clear())
}

// DismissError empties the error slot.
func (h *Handler) DismissError() {
	h.ErrMsg = ""
}

func (h *Handler) yankSelected() {
	t := h.SelectedTask()
	if t == nil {
		return
	}
	if err := h.CopyToClipboard(t.Title); err != nil {
		h.Log.WithError(err).Warn("clipboard write failed")
		h.ErrMsg = "Failed to copy to clipboard"
		return
	}
	h.StatusMsg = "Copied: " + t.Title
}

func nextStatus(s api.Status) api.Status {
	for i, v := range api.Statuses {
		if v == s {
			return api.Statuses[(i+1)%len(api.Statuses)]
		}
	}
	return api.StatusPending
}

// apiMessage converts err into the banner text.
func apiMessage(err error, fallback string) string {
	return api.ErrorMessage(err, fallback)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimSpace(string(r))
}
