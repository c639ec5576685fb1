package api

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

// AuthResponse is the login/register reply: the bearer token plus the
// identity fields the server includes alongside it.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/api/auth/login", loginRequest{username, password}, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	var out AuthResponse
	req := registerRequest{Username: username, Email: email, Password: password}
	if err := c.post(ctx, "/api/auth/register", req, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// GetCurrentUser fetches the full profile of the authenticated account.
func (c *Client) GetCurrentUser(ctx context.Context, id int64) (model.User, error) {
	var out model.User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
