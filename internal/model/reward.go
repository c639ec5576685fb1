package model

import "time"

// Redemption status values.
const (
	RedemptionPending   = "pending"
	RedemptionApproved  = "approved"
	RedemptionFulfilled = "fulfilled"
	RedemptionCancelled = "cancelled"
)

type Reward struct {
	ID            int64      `json:"id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	PointsCost    int        `json:"pointsCost"`
	Category      string     `json:"category,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	IsActive      bool       `json:"isActive"`
	StockQuantity *int       `json:"stockQuantity,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// RewardPatch is a partial reward update. Nil fields are left untouched.
type RewardPatch struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	PointsCost    *int    `json:"pointsCost,omitempty"`
	Category      *string `json:"category,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
	StockQuantity *int    `json:"stockQuantity,omitempty"`
}

// Apply merges the patch into a copy of r and returns it.
func (p RewardPatch) Apply(r Reward) Reward {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.PointsCost != nil {
		r.PointsCost = *p.PointsCost
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	if p.StockQuantity != nil {
		r.StockQuantity = p.StockQuantity
	}
	return r
}

type RewardRedemption struct {
	ID          int64      `json:"id,omitempty"`
	UserID      int64      `json:"userId"`
	RewardID    int64      `json:"rewardId"`
	PointsSpent int        `json:"pointsSpent"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	RedeemedAt  *time.Time `json:"redeemedAt,omitempty"`
}

// RedemptionPatch is a partial redemption update. Nil fields are left untouched.
type RedemptionPatch struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// Apply merges the patch into a copy of r and returns it.
func (p RedemptionPatch) Apply(r RewardRedemption) RewardRedemption {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	return r
}

// Goal periods.
const (
	GoalPeriodDay   = "day"
	GoalPeriodWeek  = "week"
	GoalPeriodMonth = "month"
)

// Goal is a reward-linked savings target.
type Goal struct {
	ID            int64      `json:"id,omitempty"`
	UserID        int64      `json:"userId"`
	UserName      string     `json:"userName,omitempty"`
	RewardID      int64      `json:"rewardId"`
	RewardName    string     `json:"rewardName,omitempty"`
	TargetPoints  int        `json:"targetPoints"`
	Period        string     `json:"period"`
	CurrentPoints int        `json:"currentPoints"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// GoalPatch is a partial goal update. Nil fields are left untouched.
type GoalPatch struct {
	TargetPoints  *int       `json:"targetPoints,omitempty"`
	Period        *string    `json:"period,omitempty"`
	CurrentPoints *int       `json:"currentPoints,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Apply merges the patch into a copy of g and returns it.
func (p GoalPatch) Apply(g Goal) Goal {
	if p.TargetPoints != nil {
		g.TargetPoints = *p.TargetPoints
	}
	if p.Period != nil {
		g.Period = *p.Period
	}
	if p.CurrentPoints != nil {
		g.CurrentPoints = *p.CurrentPoints
	}
	if p.IsActive != nil {
		g.IsActive = *p.IsActive
	}
	if p.CompletedAt != nil {
		g.CompletedAt = p.CompletedAt
	}
	return g
}
