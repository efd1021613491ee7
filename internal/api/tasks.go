package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListTasks returns the tasks matching filter, in server order.
// The result is never nil on success.
func (c *Client) ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	var response listResponse
	if err := c.GetWithQuery(ctx, tasksPath, buildFilterQuery(filter), &response); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if response.Data == nil {
		return []Task{}, nil
	}
	return response.Data, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, in TaskInput) (*Task, error) {
	var task Task
	if err := c.Post(ctx, tasksPath, in, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask updates an existing task. Only the non-nil fields of upd are sent.
func (c *Client) UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*Task, error) {
	if id == "" {
		return nil, fmt.Errorf("task id cannot be empty")
	}

	var task Task
	if err := c.Put(ctx, taskPath(id), upd, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("task id cannot be empty")
	}

	if err := c.Delete(ctx, taskPath(id)); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

func taskPath(id string) string {
	return tasksPath + "/" + url.PathEscape(id)
}
