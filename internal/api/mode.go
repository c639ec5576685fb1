package api

import (
	"context"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

type setModeRequest struct {
	Mode string `json:"mode"`
	Pin  string `json:"pin,omitempty"`
}

type pinRequest struct {
	Pin string `json:"pin"`
}

type pinResetRequest struct {
	Token string `json:"token"`
	Pin   string `json:"pin"`
}

func (c *Client) GetMode(ctx context.Context) (model.Mode, error) {
	var out model.Mode
	if err := c.get(ctx, "/api/settings/mode", nil, &out); err != nil {
		return model.Mode{}, err
	}
	return out, nil
}

// SetMode switches the parent/silent mode. Leaving silent mode requires the
// PIN; the server rejects the switch otherwise.
func (c *Client) SetMode(ctx context.Context, mode, pin string) (model.Mode, error) {
	var out model.Mode
	if err := c.post(ctx, "/api/settings/mode", setModeRequest{Mode: mode, Pin: pin}, &out); err != nil {
		return model.Mode{}, err
	}
	return out, nil
}

func (c *Client) SetPin(ctx context.Context, pin string) error {
	return c.post(ctx, "/api/settings/pin", pinRequest{Pin: pin}, nil)
}

// RequestPinReset emails the account holder a reset token.
func (c *Client) RequestPinReset(ctx context.Context) error {
	return c.post(ctx, "/api/settings/pin/reset-request", nil, nil)
}

func (c *Client) ResetPin(ctx context.Context, token, pin string) error {
	return c.post(ctx, "/api/settings/pin/reset", pinResetRequest{Token: token, Pin: pin}, nil)
}
