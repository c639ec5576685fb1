package model

import "time"

// Task status values.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task priority values.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Task struct {
	ID                int64      `json:"id,omitempty"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	AssignedUserID    *int64     `json:"assignedUserId,omitempty"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Category          string     `json:"category,omitempty"`
	RecurrencePattern string     `json:"recurrencePattern,omitempty"`
	RewardPoints      int        `json:"rewardPoints"`
	Subtasks          string     `json:"subtasks,omitempty"`
	OrderIndex        int        `json:"orderIndex"`
	Icon              string     `json:"icon,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	CreatedBy         *int64     `json:"createdBy,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	AssignedUserID    *int64     `json:"assignedUserId,omitempty"`
	Priority          *string    `json:"priority,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Category          *string    `json:"category,omitempty"`
	RecurrencePattern *string    `json:"recurrencePattern,omitempty"`
	RewardPoints      *int       `json:"rewardPoints,omitempty"`
	Subtasks          *string    `json:"subtasks,omitempty"`
	OrderIndex        *int       `json:"orderIndex,omitempty"`
	Icon              *string    `json:"icon,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// Apply merges the patch into a copy of t and returns it.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.AssignedUserID != nil {
		t.AssignedUserID = p.AssignedUserID
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.RecurrencePattern != nil {
		t.RecurrencePattern = *p.RecurrencePattern
	}
	if p.RewardPoints != nil {
		t.RewardPoints = *p.RewardPoints
	}
	if p.Subtasks != nil {
		t.Subtasks = *p.Subtasks
	}
	if p.OrderIndex != nil {
		t.OrderIndex = *p.OrderIndex
	}
	if p.Icon != nil {
		t.Icon = *p.Icon
	}
	if p.CompletedAt != nil {
		t.CompletedAt = p.CompletedAt
	}
	if p.UpdatedAt != nil {
		t.UpdatedAt = p.UpdatedAt
	}
	return t
}
