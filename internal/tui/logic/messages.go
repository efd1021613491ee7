package logic

import (
	"time"

	"github.com/hy4ri/tasktracker/internal/api"
)

// tasksLoadedMsg carries the result of a successful fetch of generation gen.
type tasksLoadedMsg struct {
	gen   uint64
	tasks []api.Task
}

// fetchFailedMsg reports a failed fetch of generation gen.
type fetchFailedMsg struct {
	gen uint64
	err error
}

type taskCreatedMsg struct {
	task *api.Task
}

// taskUpdatedMsg reports a successful update of id. fromForm is set when
// the update came from submitting the edit form.
type taskUpdatedMsg struct {
	id       string
	task     *api.Task
	fromForm bool
}

type taskDeletedMsg struct {
	id string
}

// mutationFailedMsg reports a failed create, update or delete.
type mutationFailedMsg struct {
	op       string
	fallback string
	err      error
}

type checkDueMsg time.Time
