package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasktracker/internal/api"
)

// Fallback messages used when the server gives no error text.
const (
	msgFetchFailed  = "Failed to fetch tasks"
	msgCreateFailed = "Failed to create task"
	msgUpdateFailed = "Failed to update task"
	msgDeleteFailed = "Failed to delete task"
)

// FetchTasks issues a read with the current filter and marks it as the
// latest generation. Only the latest generation's response is applied.
func (h *Handler) FetchTasks() tea.Cmd {
	h.FetchGen++
	gen := h.FetchGen
	h.Loading = true

	ctx := h.ctx
	client := h.Client
	filter := h.Filter.Query()

	h.Log.WithField("generation", gen).Debug("fetching tasks")

	return func() tea.Msg {
		tasks, err := client.ListTasks(ctx, filter)
		if err != nil {
			return fetchFailedMsg{gen: gen, err: err}
		}
		return tasksLoadedMsg{gen: gen, tasks: tasks}
	}
}

// CreateTask issues a create request.
func (h *Handler) CreateTask(in api.TaskInput) tea.Cmd {
	ctx := h.ctx
	client := h.Client
	h.StatusMsg = "Creating task..."

	return func() tea.Msg {
		task, err := client.CreateTask(ctx, in)
		if err != nil {
			return mutationFailedMsg{op: "create", fallback: msgCreateFailed, err: err}
		}
		return taskCreatedMsg{task: task}
	}
}

// UpdateTask issues an update request against id.
func (h *Handler) UpdateTask(id string, upd api.TaskUpdate, fromForm bool) tea.Cmd {
	ctx := h.ctx
	client := h.Client
	h.StatusMsg = "Updating task..."

	return func() tea.Msg {
		task, err := client.UpdateTask(ctx, id, upd)
		if err != nil {
			return mutationFailedMsg{op: "update", fallback: msgUpdateFailed, err: err}
		}
		return taskUpdatedMsg{id: id, task: task, fromForm: fromForm}
	}
}

// deleteTask issues a delete request. Callers must have confirmed first.
func (h *Handler) deleteTask(id string) tea.Cmd {
	ctx := h.ctx
	client := h.Client
	h.StatusMsg = "Deleting task..."

	return func() tea.Msg {
		if err := client.DeleteTask(ctx, id); err != nil {
			return mutationFailedMsg{op: "delete", fallback: msgDeleteFailed, err: err}
		}
		return taskDeletedMsg{id: id}
	}
}
