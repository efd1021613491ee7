// Package api provides a client for the task tracker REST API.
package api

import (
	"time"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human-readable name of the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case "":
		return "All"
	}
	return string(s)
}

// Priority is the importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label returns the human-readable name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case "":
		return "All"
	}
	return string(p)
}

// SortBy is the server-side ordering key for task listings.
type SortBy string

const (
	SortByCreatedAt SortBy = "createdAt"
	SortByDueDate   SortBy = "dueDate"
	SortByPriority  SortBy = "priority"
)

// SortKeys lists every sort key in display order.
var SortKeys = []SortBy{SortByCreatedAt, SortByDueDate, SortByPriority}

// Valid reports whether s is a known sort key.
func (s SortBy) Valid() bool {
	switch s {
	case SortByCreatedAt, SortByDueDate, SortByPriority:
		return true
	}
	return false
}

// Label returns the human-readable name of the sort key.
func (s SortBy) Label() string {
	switch s {
	case SortByCreatedAt:
		return "Date Created"
	case SortByDueDate:
		return "Due Date"
	case SortByPriority:
		return "Priority"
	}
	return string(s)
}

// NoDueDate is displayed for tasks without a due date.
const NoDueDate = "No due date"

// DueDateLayout is the wire and input format for calendar due dates.
const DueDateLayout = "2006-01-02"

// Task represents a task as returned by the server.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsOverdue reports whether the due date is strictly before now and the task
// is not completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now) && t.Status != StatusCompleted
}

// DueLabel formats the due date for display, e.g. "Mar 4, 2025".
// Due dates are calendar days stored as UTC midnight, so they are rendered in UTC.
func (t *Task) DueLabel() string {
	if t.DueDate == nil {
		return NoDueDate
	}
	return t.DueDate.UTC().Format("Jan 2, 2006")
}

// DueInput returns the due date in input format, or "" when absent.
func (t *Task) DueInput() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.UTC().Format(DueDateLayout)
}

// TaskFilter holds the query parameters for listing tasks.
type TaskFilter struct {
	Status   Status
	Priority Priority
	SortBy   SortBy
}

// TaskInput is the request body for creating a task.
// DueDate is omitted from the body when blank.
type TaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
}

// TaskUpdate is the request body for updating a task.
// Nil fields are left unchanged on the server.
type TaskUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
}

// UpdateFromInput builds a full update from form input.
// A blank due date is omitted, leaving the stored one in place.
func UpdateFromInput(in TaskInput) TaskUpdate {
	u := TaskUpdate{
		Title:       &in.Title,
		Description: &in.Description,
		Status:      &in.Status,
		Priority:    &in.Priority,
	}
	if in.DueDate != "" {
		due := in.DueDate
		u.DueDate = &due
	}
	return u
}

// StatusUpdate builds an update that only changes the status.
func StatusUpdate(s Status) TaskUpdate {
	return TaskUpdate{Status: &s}
}

// listResponse is the envelope of GET /api/tasks.
type listResponse struct {
	Data []Task `json:"data"`
}

// errorResponse is the body of a non-success response.
type errorResponse struct {
	Error string `json:"error"`
}
