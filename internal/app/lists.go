package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (a *App) LoadLists(ctx context.Context) error {
	a.Lists.SetLoading(true)
	defer a.Lists.SetLoading(false)

	lists, err := a.api.Lists.ListLists(ctx)
	if err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("load lists: %w", err)
	}
	a.Lists.SetError("")
	a.Lists.SetLists(lists)
	return nil
}

// LoadListItems fetches one list's items and selects that list.
func (a *App) LoadListItems(ctx context.Context, listID int64) error {
	a.Lists.SetLoading(true)
	defer a.Lists.SetLoading(false)

	items, err := a.api.Lists.ListItems(ctx, listID)
	if err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("load items of list %d: %w", listID, err)
	}

	// Replace this list's items, keeping the other lists' items intact.
	merged := items
	for _, it := range a.Lists.Items() {
		if it.ListID != listID {
			merged = append(merged, it)
		}
	}
	a.Lists.SetError("")
	a.Lists.SetItems(merged)
	a.Lists.SetActiveListID(&listID)
	return nil
}

func (a *App) CreateList(ctx context.Context, l model.FamilyList) (model.FamilyList, error) {
	created, err := a.api.Lists.CreateList(ctx, l)
	if err != nil {
		a.Lists.SetError(err.Error())
		return model.FamilyList{}, fmt.Errorf("create list: %w", err)
	}
	a.Lists.AddList(created)
	return created, nil
}

func (a *App) UpdateList(ctx context.Context, id int64, patch model.ListPatch) error {
	if _, err := a.api.Lists.UpdateList(ctx, id, patch); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("update list %d: %w", id, err)
	}
	a.Lists.UpdateList(id, patch)
	return nil
}

// DeleteList removes the list on the server, then cascades locally so its
// items disappear with it.
func (a *App) DeleteList(ctx context.Context, id int64) error {
	if err := a.api.Lists.DeleteList(ctx, id); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("delete list %d: %w", id, err)
	}
	a.Lists.RemoveList(id)
	if sel := a.Lists.ActiveListID(); sel != nil && *sel == id {
		a.Lists.SetActiveListID(nil)
	}
	return nil
}

func (a *App) ArchiveList(ctx context.Context, id int64) error {
	if _, err := a.api.Lists.ArchiveList(ctx, id); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("archive list %d: %w", id, err)
	}
	a.Lists.ArchiveList(id)
	return nil
}

func (a *App) UnarchiveList(ctx context.Context, id int64) error {
	if _, err := a.api.Lists.UnarchiveList(ctx, id); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("unarchive list %d: %w", id, err)
	}
	a.Lists.UnarchiveList(id)
	return nil
}

// AddListItem creates an item at the end of the list; the order index is the
// list's current item count.
func (a *App) AddListItem(ctx context.Context, listID int64, content string) (model.ListItem, error) {
	item := model.ListItem{
		ListID:     listID,
		Content:    content,
		OrderIndex: a.Lists.NextOrderIndex(listID),
	}
	created, err := a.api.Lists.CreateItem(ctx, item)
	if err != nil {
		a.Lists.SetError(err.Error())
		return model.ListItem{}, fmt.Errorf("add item to list %d: %w", listID, err)
	}
	a.Lists.AddItem(created)
	return created, nil
}

func (a *App) UpdateListItem(ctx context.Context, id int64, patch model.ItemPatch) error {
	if _, err := a.api.Lists.UpdateItem(ctx, id, patch); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("update item %d: %w", id, err)
	}
	a.Lists.UpdateItem(id, patch)
	return nil
}

func (a *App) DeleteListItem(ctx context.Context, id int64) error {
	if err := a.api.Lists.DeleteItem(ctx, id); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	a.Lists.RemoveItem(id)
	return nil
}

// ToggleListItem flips the checked flag on the server and mirrors it.
func (a *App) ToggleListItem(ctx context.Context, id int64) error {
	item, ok := a.listItemByID(id)
	if !ok {
		return fmt.Errorf("toggle item %d: unknown item", id)
	}
	checked := !item.IsChecked
	if _, err := a.api.Lists.UpdateItem(ctx, id, model.ItemPatch{IsChecked: &checked}); err != nil {
		a.Lists.SetError(err.Error())
		return fmt.Errorf("toggle item %d: %w", id, err)
	}
	a.Lists.ToggleItemChecked(id)
	return nil
}

func (a *App) listItemByID(id int64) (model.ListItem, bool) {
	for _, it := range a.Lists.Items() {
		if it.ID == id {
			return it, true
		}
	}
	return model.ListItem{}, false
}
