package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

// SyncMode pulls the authoritative mode state from the server.
func (a *App) SyncMode(ctx context.Context) error {
	m, err := a.api.Mode.GetMode(ctx)
	if err != nil {
		a.Mode.SetError(err.Error())
		return fmt.Errorf("sync mode: %w", err)
	}
	a.Mode.SetError("")
	a.Mode.SetServerState(m)
	return nil
}

// EnterSilentMode needs no PIN; any family member may switch the device.
func (a *App) EnterSilentMode(ctx context.Context) error {
	m, err := a.api.Mode.SetMode(ctx, model.ModeSilent, "")
	if err != nil {
		a.Mode.SetError(err.Error())
		return fmt.Errorf("enter silent mode: %w", err)
	}
	a.Mode.SetError("")
	a.Mode.SetServerState(m)
	return nil
}

// ExitSilentMode requires the PIN. The server verifies it; when the server
// is unreachable and a hash is cached locally, the cached hash unlocks the
// device so a parent is not locked out offline.
func (a *App) ExitSilentMode(ctx context.Context, pin string) error {
	m, err := a.api.Mode.SetMode(ctx, model.ModeParent, pin)
	if err != nil {
		if a.Mode.HasCachedPin() && a.Mode.VerifyCachedPin(pin) {
			a.log.Warn("mode switch verified offline", "error", err)
			a.Mode.SetMode(model.ModeParent)
			return nil
		}
		a.Mode.SetError(err.Error())
		return fmt.Errorf("exit silent mode: %w", err)
	}
	a.Mode.SetError("")
	a.Mode.SetServerState(m)
	return nil
}

// SetModePin registers the PIN with the server and caches its hash for
// offline verification.
func (a *App) SetModePin(ctx context.Context, pin string) error {
	if err := a.api.Mode.SetPin(ctx, pin); err != nil {
		a.Mode.SetError(err.Error())
		return fmt.Errorf("set pin: %w", err)
	}
	if err := a.Mode.CachePin(pin); err != nil {
		a.log.Warn("cache pin hash", "error", err)
	}
	a.Mode.SetHasPinSet(true)
	a.Mode.SetError("")
	return nil
}

func (a *App) RequestModePinReset(ctx context.Context) error {
	if err := a.api.Mode.RequestPinReset(ctx); err != nil {
		a.Mode.SetError(err.Error())
		return fmt.Errorf("request pin reset: %w", err)
	}
	return nil
}

// ResetModePin completes a PIN reset with the emailed token. The stale
// cached hash is replaced by the new PIN's hash.
func (a *App) ResetModePin(ctx context.Context, token, pin string) error {
	if err := a.api.Mode.ResetPin(ctx, token, pin); err != nil {
		a.Mode.SetError(err.Error())
		return fmt.Errorf("reset pin: %w", err)
	}
	if err := a.Mode.CachePin(pin); err != nil {
		a.log.Warn("cache pin hash", "error", err)
	}
	a.Mode.SetHasPinSet(true)
	a.Mode.SetError("")
	return nil
}
