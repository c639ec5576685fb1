package model

import "time"

// List types.
const (
	ListTypeShopping = "shopping"
	ListTypeTodo     = "todo"
	ListTypePacking  = "packing"
	ListTypeWish     = "wish"
	ListTypeCustom   = "custom"
)

type FamilyList struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	IsShared    bool       `json:"isShared"`
	CreatedBy   *int64     `json:"createdBy,omitempty"`
	IsArchived  bool       `json:"isArchived"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ListPatch is a partial list update. Nil fields are left untouched.
type ListPatch struct {
	Name        *string    `json:"name,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsShared    *bool      `json:"isShared,omitempty"`
	IsArchived  *bool      `json:"isArchived,omitempty"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
}

// Apply merges the patch into a copy of l and returns it.
func (p ListPatch) Apply(l FamilyList) FamilyList {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.IsShared != nil {
		l.IsShared = *p.IsShared
	}
	if p.IsArchived != nil {
		l.IsArchived = *p.IsArchived
	}
	if p.ArchivedAt != nil {
		l.ArchivedAt = p.ArchivedAt
	}
	return l
}

type ListItem struct {
	ID         int64      `json:"id,omitempty"`
	ListID     int64      `json:"listId"`
	Content    string     `json:"content"`
	IsChecked  bool       `json:"isChecked"`
	Priority   string     `json:"priority,omitempty"`
	OrderIndex int        `json:"orderIndex"`
	AddedBy    *int64     `json:"addedBy,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// ItemPatch is a partial list-item update. Nil fields are left untouched.
type ItemPatch struct {
	Content    *string `json:"content,omitempty"`
	IsChecked  *bool   `json:"isChecked,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	OrderIndex *int    `json:"orderIndex,omitempty"`
}

// Apply merges the patch into a copy of i and returns it.
func (p ItemPatch) Apply(i ListItem) ListItem {
	if p.Content != nil {
		i.Content = *p.Content
	}
	if p.IsChecked != nil {
		i.IsChecked = *p.IsChecked
	}
	if p.Priority != nil {
		i.Priority = *p.Priority
	}
	if p.OrderIndex != nil {
		i.OrderIndex = *p.OrderIndex
	}
	return i
}
