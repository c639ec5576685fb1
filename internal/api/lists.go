package api

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListLists(ctx context.Context) ([]model.FamilyList, error) {
	var out []model.FamilyList
	if err := c.get(ctx, "/api/lists", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateList(ctx context.Context, l model.FamilyList) (model.FamilyList, error) {
	var out model.FamilyList
	if err := c.post(ctx, "/api/lists", l, &out); err != nil {
		return model.FamilyList{}, err
	}
	return out, nil
}

func (c *Client) UpdateList(ctx context.Context, id int64, patch model.ListPatch) (model.FamilyList, error) {
	var out model.FamilyList
	if err := c.put(ctx, fmt.Sprintf("/api/lists/%d", id), patch, &out); err != nil {
		return model.FamilyList{}, err
	}
	return out, nil
}

func (c *Client) DeleteList(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/lists/%d", id))
}

func (c *Client) ArchiveList(ctx context.Context, id int64) (model.FamilyList, error) {
	var out model.FamilyList
	if err := c.put(ctx, fmt.Sprintf("/api/lists/%d/archive", id), nil, &out); err != nil {
		return model.FamilyList{}, err
	}
	return out, nil
}

func (c *Client) UnarchiveList(ctx context.Context, id int64) (model.FamilyList, error) {
	var out model.FamilyList
	if err := c.put(ctx, fmt.Sprintf("/api/lists/%d/unarchive", id), nil, &out); err != nil {
		return model.FamilyList{}, err
	}
	return out, nil
}

func (c *Client) ListItems(ctx context.Context, listID int64) ([]model.ListItem, error) {
	var out []model.ListItem
	if err := c.get(ctx, fmt.Sprintf("/api/lists/%d/items", listID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateItem(ctx context.Context, it model.ListItem) (model.ListItem, error) {
	var out model.ListItem
	if err := c.post(ctx, "/api/lists/items", it, &out); err != nil {
		return model.ListItem{}, err
	}
	return out, nil
}

func (c *Client) UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) (model.ListItem, error) {
	var out model.ListItem
	if err := c.put(ctx, fmt.Sprintf("/api/lists/items/%d", id), patch, &out); err != nil {
		return model.ListItem{}, err
	}
	return out, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/lists/items/%d", id))
}
