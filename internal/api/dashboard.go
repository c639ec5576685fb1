package api

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) GetMetrics(ctx context.Context) (model.Metrics, error) {
	var out model.Metrics
	if err := c.get(ctx, "/api/dashboard/metrics", nil, &out); err != nil {
		return model.Metrics{}, err
	}
	return out, nil
}

func (c *Client) GetUserMetrics(ctx context.Context, userID int64) (model.UserMetrics, error) {
	var out model.UserMetrics
	if err := c.get(ctx, fmt.Sprintf("/api/dashboard/metrics/user/%d", userID), nil, &out); err != nil {
		return model.UserMetrics{}, err
	}
	return out, nil
}
