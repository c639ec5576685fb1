package app

import (
	"context"
	"fmt"
)

// LoadDashboard fetches the family metrics plus the session user's personal
// metrics.
func (a *App) LoadDashboard(ctx context.Context) error {
	a.Dashboard.SetLoading(true)
	defer a.Dashboard.SetLoading(false)

	metrics, err := a.api.Dashboard.GetMetrics(ctx)
	if err != nil {
		a.Dashboard.SetError(err.Error())
		return fmt.Errorf("load dashboard: %w", err)
	}
	a.Dashboard.SetError("")
	a.Dashboard.SetMetrics(metrics)

	if u, ok := a.Auth.User(); ok {
		userMetrics, err := a.api.Dashboard.GetUserMetrics(ctx, u.ID)
		if err != nil {
			// Family metrics already loaded; the personal panel can wait.
			a.log.Warn("load user metrics", "error", err)
			return nil
		}
		a.Dashboard.SetUserMetrics(userMetrics)
	}
	return nil
}
