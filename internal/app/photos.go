package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (a *App) LoadPhotos(ctx context.Context) error {
	a.Photos.SetLoading(true)
	defer a.Photos.SetLoading(false)

	photos, err := a.api.Photos.ListPhotos(ctx)
	if err != nil {
		a.Photos.SetError(err.Error())
		return fmt.Errorf("load photos: %w", err)
	}
	a.Photos.SetError("")
	a.Photos.SetAll(photos)
	return nil
}

// UploadPhoto registers the photo with the server and stores the returned
// record. Progress is reset whichever way the call ends.
func (a *App) UploadPhoto(ctx context.Context, p model.Photo) (model.Photo, error) {
	a.Photos.SetUploadProgress(0)
	defer a.Photos.SetUploadProgress(0)

	created, err := a.api.Photos.CreatePhoto(ctx, p)
	if err != nil {
		a.Photos.SetError(err.Error())
		return model.Photo{}, fmt.Errorf("upload photo: %w", err)
	}
	a.Photos.SetUploadProgress(100)
	a.Photos.Add(created)
	return created, nil
}

func (a *App) UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) error {
	if _, err := a.api.Photos.UpdatePhoto(ctx, id, patch); err != nil {
		a.Photos.SetError(err.Error())
		return fmt.Errorf("update photo %d: %w", id, err)
	}
	a.Photos.Update(id, patch)
	return nil
}

func (a *App) DeletePhoto(ctx context.Context, id int64) error {
	if err := a.api.Photos.DeletePhoto(ctx, id); err != nil {
		a.Photos.SetError(err.Error())
		return fmt.Errorf("delete photo %d: %w", id, err)
	}
	a.Photos.Remove(id)
	return nil
}
