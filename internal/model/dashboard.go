package model

import "time"

// Widget is a dashboard panel configuration.
type Widget struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

// Activity is a single feed entry on the dashboard.
type Activity struct {
	ID        int64     `json:"id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	UserID    *int64    `json:"userId,omitempty"`
	UserName  string    `json:"userName,omitempty"`
}

// Metrics is the family-wide count summary the dashboard endpoint returns.
type Metrics struct {
	TotalEvents    int64 `json:"totalEvents"`
	TotalTasks     int64 `json:"totalTasks"`
	PendingTasks   int64 `json:"pendingTasks"`
	CompletedTasks int64 `json:"completedTasks"`
	TotalRewards   int64 `json:"totalRewards"`
	ActiveRewards  int64 `json:"activeRewards"`
	TotalMeals     int64 `json:"totalMeals"`
	TotalPhotos    int64 `json:"totalPhotos"`
	TotalLists     int64 `json:"totalLists"`
	ActiveLists    int64 `json:"activeLists"`
	TotalUsers     int64 `json:"totalUsers"`
}

// UserMetrics is the per-user count summary.
type UserMetrics struct {
	RewardPoints   int   `json:"rewardPoints"`
	AssignedTasks  int64 `json:"assignedTasks"`
	CompletedTasks int64 `json:"completedTasks"`
	PendingTasks   int64 `json:"pendingTasks"`
	Redemptions    int64 `json:"redemptions"`
	UploadedPhotos int64 `json:"uploadedPhotos"`
}
