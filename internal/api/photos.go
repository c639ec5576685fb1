package api

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	var out []model.Photo
	if err := c.get(ctx, "/api/photos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePhoto(ctx context.Context, p model.Photo) (model.Photo, error) {
	var out model.Photo
	if err := c.post(ctx, "/api/photos", p, &out); err != nil {
		return model.Photo{}, err
	}
	return out, nil
}

func (c *Client) UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) (model.Photo, error) {
	var out model.Photo
	if err := c.put(ctx, fmt.Sprintf("/api/photos/%d", id), patch, &out); err != nil {
		return model.Photo{}, err
	}
	return out, nil
}

func (c *Client) DeletePhoto(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/photos/%d", id))
}
