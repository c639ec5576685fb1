package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

// LoadTasks replaces the task collection from the server. On failure the
// previous data stays visible and the error cell is set instead.
func (a *App) LoadTasks(ctx context.Context) error {
	a.Tasks.SetLoading(true)
	defer a.Tasks.SetLoading(false)

	tasks, err := a.api.Tasks.ListTasks(ctx)
	if err != nil {
		a.Tasks.SetError(err.Error())
		return fmt.Errorf("load tasks: %w", err)
	}
	a.Tasks.SetError("")
	a.Tasks.SetAll(tasks)
	return nil
}

// CreateTask sends the task to the server and stores the returned record,
// which carries the server-assigned id.
func (a *App) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	created, err := a.api.Tasks.CreateTask(ctx, t)
	if err != nil {
		a.Tasks.SetError(err.Error())
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	a.Tasks.Add(created)
	return created, nil
}

func (a *App) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) error {
	if _, err := a.api.Tasks.UpdateTask(ctx, id, patch); err != nil {
		a.Tasks.SetError(err.Error())
		return fmt.Errorf("update task %d: %w", id, err)
	}
	a.Tasks.Update(id, patch)
	return nil
}

func (a *App) DeleteTask(ctx context.Context, id int64) error {
	if err := a.api.Tasks.DeleteTask(ctx, id); err != nil {
		a.Tasks.SetError(err.Error())
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	a.Tasks.Remove(id)
	return nil
}

// CompleteTask marks the task done and credits its reward points to the
// session user, keeping the rewards store's balance mirror in step.
func (a *App) CompleteTask(ctx context.Context, id int64) error {
	user, ok := a.Auth.User()
	if !ok {
		return fmt.Errorf("complete task %d: not logged in", id)
	}

	updated, err := a.api.Tasks.CompleteTask(ctx, id, user.ID)
	if err != nil {
		a.Tasks.SetError(err.Error())
		return fmt.Errorf("complete task %d: %w", id, err)
	}

	a.Tasks.Update(id, model.TaskPatch{
		Status:      &updated.Status,
		CompletedAt: updated.CompletedAt,
	})
	if updated.RewardPoints > 0 {
		a.Auth.AddUserPoints(updated.RewardPoints)
		a.Rewards.SetUserPoints(a.Auth.Points())
	}
	a.log.Info("task completed", "task", id, "points", updated.RewardPoints)
	return nil
}
