package model

import "time"

type Event struct {
	ID                int64      `json:"id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           time.Time  `json:"endDate"`
	UserID            *int64     `json:"userId,omitempty"`
	Category          string     `json:"category,omitempty"`
	Color             string     `json:"color,omitempty"`
	IsAllDay          bool       `json:"isAllDay,omitempty"`
	RecurrencePattern string     `json:"recurrencePattern,omitempty"`
	AssignedMembers   string     `json:"assignedMembers,omitempty"`
	ReminderMinutes   string     `json:"reminderMinutes,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// EventPatch is a partial event update. Nil fields are left untouched.
type EventPatch struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	UserID            *int64     `json:"userId,omitempty"`
	Category          *string    `json:"category,omitempty"`
	Color             *string    `json:"color,omitempty"`
	IsAllDay          *bool      `json:"isAllDay,omitempty"`
	RecurrencePattern *string    `json:"recurrencePattern,omitempty"`
	AssignedMembers   *string    `json:"assignedMembers,omitempty"`
	ReminderMinutes   *string    `json:"reminderMinutes,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// Apply merges the patch into a copy of e and returns it.
func (p EventPatch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.UserID != nil {
		e.UserID = p.UserID
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.IsAllDay != nil {
		e.IsAllDay = *p.IsAllDay
	}
	if p.RecurrencePattern != nil {
		e.RecurrencePattern = *p.RecurrencePattern
	}
	if p.AssignedMembers != nil {
		e.AssignedMembers = *p.AssignedMembers
	}
	if p.ReminderMinutes != nil {
		e.ReminderMinutes = *p.ReminderMinutes
	}
	if p.UpdatedAt != nil {
		e.UpdatedAt = p.UpdatedAt
	}
	return e
}
