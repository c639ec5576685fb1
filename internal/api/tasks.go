package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var out []model.Task
	if err := c.get(ctx, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	var out model.Task
	if err := c.post(ctx, "/api/tasks", t, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	var out model.Task
	if err := c.put(ctx, fmt.Sprintf("/api/tasks/%d", id), patch, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/tasks/%d", id))
}

// CompleteTask marks the task done on behalf of userID. The server awards
// the task's points and returns the updated task.
func (c *Client) CompleteTask(ctx context.Context, id, userID int64) (model.Task, error) {
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	var out model.Task
	path := fmt.Sprintf("/api/tasks/%d/complete", id)
	if err := c.do(ctx, http.MethodPut, path, q, nil, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}
