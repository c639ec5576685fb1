package api

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListMembers(ctx context.Context) ([]model.FamilyMember, error) {
	var out []model.FamilyMember
	if err := c.get(ctx, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMember(ctx context.Context, id int64) (model.FamilyMember, error) {
	var out model.FamilyMember
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &out); err != nil {
		return model.FamilyMember{}, err
	}
	return out, nil
}

func (c *Client) CreateMember(ctx context.Context, in model.MemberInput) (model.FamilyMember, error) {
	var out model.FamilyMember
	if err := c.post(ctx, "/api/users", in, &out); err != nil {
		return model.FamilyMember{}, err
	}
	return out, nil
}

func (c *Client) UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) (model.FamilyMember, error) {
	var out model.FamilyMember
	if err := c.put(ctx, fmt.Sprintf("/api/users/%d", id), patch, &out); err != nil {
		return model.FamilyMember{}, err
	}
	return out, nil
}

func (c *Client) DeleteMember(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}
