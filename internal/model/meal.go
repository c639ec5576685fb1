package model

import "time"

// Meal categories.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type Meal struct {
	ID           int64      `json:"id,omitempty"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Recipe       string     `json:"recipe,omitempty"`
	Ingredients  string     `json:"ingredients,omitempty"` // JSON-encoded string list
	AssignedDate *time.Time `json:"assignedDate,omitempty"`
	DietaryTags  string     `json:"dietaryTags,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	IsFavorite   bool       `json:"isFavorite"`
	CreatedBy    *int64     `json:"createdBy,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// MealPatch is a partial meal update. Nil fields are left untouched.
type MealPatch struct {
	Name         *string    `json:"name,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Recipe       *string    `json:"recipe,omitempty"`
	Ingredients  *string    `json:"ingredients,omitempty"`
	AssignedDate *time.Time `json:"assignedDate,omitempty"`
	DietaryTags  *string    `json:"dietaryTags,omitempty"`
	ImageURL     *string    `json:"imageUrl,omitempty"`
	IsFavorite   *bool      `json:"isFavorite,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Apply merges the patch into a copy of m and returns it.
func (p MealPatch) Apply(m Meal) Meal {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Recipe != nil {
		m.Recipe = *p.Recipe
	}
	if p.Ingredients != nil {
		m.Ingredients = *p.Ingredients
	}
	if p.AssignedDate != nil {
		m.AssignedDate = p.AssignedDate
	}
	if p.DietaryTags != nil {
		m.DietaryTags = *p.DietaryTags
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
	if p.IsFavorite != nil {
		m.IsFavorite = *p.IsFavorite
	}
	if p.UpdatedAt != nil {
		m.UpdatedAt = p.UpdatedAt
	}
	return m
}
