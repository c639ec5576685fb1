package model

import "time"

type FamilyMember struct {
	ID           int64      `json:"id,omitempty"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName"`
	Color        string     `json:"color,omitempty"`
	Age          *int       `json:"age,omitempty"`
	IsParent     bool       `json:"isParent"`
	RewardPoints int        `json:"rewardPoints"`
	Roles        string     `json:"roles,omitempty"`
	Photo        string     `json:"photo,omitempty"`
	DateOfBirth  string     `json:"dateOfBirth,omitempty"`
	Role         string     `json:"role,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// MemberInput is the create payload; the server assigns the id.
type MemberInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color,omitempty"`
	Age         *int   `json:"age,omitempty"`
	IsParent    bool   `json:"isParent"`
	Photo       string `json:"photo,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Role        string `json:"role,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// MemberPatch is a partial member update. Nil fields are left untouched.
type MemberPatch struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	Color        *string `json:"color,omitempty"`
	Age          *int    `json:"age,omitempty"`
	IsParent     *bool   `json:"isParent,omitempty"`
	RewardPoints *int    `json:"rewardPoints,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
	Role         *string `json:"role,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Gender       *string `json:"gender,omitempty"`
}

// Apply merges the patch into a copy of m and returns it.
func (p MemberPatch) Apply(m FamilyMember) FamilyMember {
	if p.Username != nil {
		m.Username = *p.Username
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.DisplayName != nil {
		m.DisplayName = *p.DisplayName
	}
	if p.Color != nil {
		m.Color = *p.Color
	}
	if p.Age != nil {
		m.Age = p.Age
	}
	if p.IsParent != nil {
		m.IsParent = *p.IsParent
	}
	if p.RewardPoints != nil {
		m.RewardPoints = *p.RewardPoints
	}
	if p.Photo != nil {
		m.Photo = *p.Photo
	}
	if p.DateOfBirth != nil {
		m.DateOfBirth = *p.DateOfBirth
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Gender != nil {
		m.Gender = *p.Gender
	}
	return m
}
