package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (a *App) LoadEvents(ctx context.Context) error {
	a.Calendar.SetLoading(true)
	defer a.Calendar.SetLoading(false)

	events, err := a.api.Calendar.ListEvents(ctx)
	if err != nil {
		a.Calendar.SetError(err.Error())
		return fmt.Errorf("load events: %w", err)
	}
	a.Calendar.SetError("")
	a.Calendar.SetAll(events)
	return nil
}

func (a *App) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	created, err := a.api.Calendar.CreateEvent(ctx, e)
	if err != nil {
		a.Calendar.SetError(err.Error())
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}
	a.Calendar.Add(created)
	return created, nil
}

func (a *App) UpdateEvent(ctx context.Context, id int64, patch model.EventPatch) error {
	if _, err := a.api.Calendar.UpdateEvent(ctx, id, patch); err != nil {
		a.Calendar.SetError(err.Error())
		return fmt.Errorf("update event %d: %w", id, err)
	}
	a.Calendar.Update(id, patch)
	return nil
}

func (a *App) DeleteEvent(ctx context.Context, id int64) error {
	if err := a.api.Calendar.DeleteEvent(ctx, id); err != nil {
		a.Calendar.SetError(err.Error())
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	a.Calendar.Remove(id)
	return nil
}
