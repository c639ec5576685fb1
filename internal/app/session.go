package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

// Login authenticates and establishes the session. The full profile is
// fetched with the fresh token so derived views (points, roles, parent flag)
// are populated from the first render.
func (a *App) Login(ctx context.Context, username, password string) error {
	resp, err := a.api.Auth.Login(ctx, username, password)
	if err != nil {
		a.Auth.SetError(err.Error())
		return fmt.Errorf("login: %w", err)
	}

	user := model.User{ID: resp.ID, Username: resp.Username, Email: resp.Email}
	a.Auth.SetSession(resp.Token, user)

	full, err := a.api.Auth.GetCurrentUser(ctx, resp.ID)
	if err != nil {
		// The session is valid; the profile refresh can be retried later.
		a.log.Warn("fetch profile after login", "error", err)
	} else {
		a.Auth.SetUser(full)
		a.Rewards.SetUserPoints(full.RewardPoints)
	}

	a.Auth.SetError("")
	a.log.Info("logged in", "user", resp.Username)
	return nil
}

func (a *App) Register(ctx context.Context, username, email, password string) error {
	resp, err := a.api.Auth.Register(ctx, username, email, password)
	if err != nil {
		a.Auth.SetError(err.Error())
		return fmt.Errorf("register: %w", err)
	}
	a.Auth.SetSession(resp.Token, model.User{ID: resp.ID, Username: resp.Username, Email: resp.Email})
	a.Auth.SetError("")
	a.log.Info("registered", "user", resp.Username)
	return nil
}

// Logout tears down the session and resets every store so no family data
// survives into the next login.
func (a *App) Logout() {
	a.Auth.ClearSession()
	a.Mode.Clear()
	a.Tasks.Reset()
	a.Calendar.Reset()
	a.Meals.Reset()
	a.Rewards.Reset()
	a.Lists.Reset()
	a.Photos.Reset()
	a.Family.Reset()
	a.Dashboard.Reset()
	a.log.Info("logged out")
}

// RefreshUser re-fetches the session user's profile and reconciles the
// reward point mirror.
func (a *App) RefreshUser(ctx context.Context) error {
	u, ok := a.Auth.User()
	if !ok {
		return nil
	}
	full, err := a.api.Auth.GetCurrentUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("refresh user: %w", err)
	}
	a.Auth.SetUser(full)
	a.Rewards.SetUserPoints(full.RewardPoints)
	return nil
}
