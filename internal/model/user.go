package model

import (
	"strings"
	"time"
)

// User is the authenticated account the session store holds.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Roles        string     `json:"roles,omitempty"` // comma-separated
	DisplayName  string     `json:"displayName,omitempty"`
	Color        string     `json:"color,omitempty"`
	Age          *int       `json:"age,omitempty"`
	IsParent     bool       `json:"isParent"`
	RewardPoints int        `json:"rewardPoints"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// RoleList splits the comma-separated roles field into trimmed names.
func (u User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	parts := strings.Split(u.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// UserPatch is a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	Roles        *string `json:"roles,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	Color        *string `json:"color,omitempty"`
	Age          *int    `json:"age,omitempty"`
	IsParent     *bool   `json:"isParent,omitempty"`
	RewardPoints *int    `json:"rewardPoints,omitempty"`
}

// Apply merges the patch into a copy of u and returns it.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Roles != nil {
		u.Roles = *p.Roles
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Color != nil {
		u.Color = *p.Color
	}
	if p.Age != nil {
		u.Age = p.Age
	}
	if p.IsParent != nil {
		u.IsParent = *p.IsParent
	}
	if p.RewardPoints != nil {
		u.RewardPoints = *p.RewardPoints
	}
	return u
}
