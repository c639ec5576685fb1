package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.get(ctx, "/api/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEventsInRange fetches events between two ISO dates, inclusive.
func (c *Client) ListEventsInRange(ctx context.Context, start, end string) ([]model.Event, error) {
	q := url.Values{"start": {start}, "end": {end}}
	var out []model.Event
	if err := c.get(ctx, "/api/events/range", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	var out model.Event
	if err := c.post(ctx, "/api/events", e, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, patch model.EventPatch) (model.Event, error) {
	var out model.Event
	if err := c.put(ctx, fmt.Sprintf("/api/events/%d", id), patch, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/events/%d", id))
}
