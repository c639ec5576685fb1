package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (a *App) LoadMeals(ctx context.Context) error {
	a.Meals.SetLoading(true)
	defer a.Meals.SetLoading(false)

	meals, err := a.api.Meals.ListMeals(ctx)
	if err != nil {
		a.Meals.SetError(err.Error())
		return fmt.Errorf("load meals: %w", err)
	}
	a.Meals.SetError("")
	a.Meals.SetAll(meals)
	return nil
}

func (a *App) CreateMeal(ctx context.Context, m model.Meal) (model.Meal, error) {
	created, err := a.api.Meals.CreateMeal(ctx, m)
	if err != nil {
		a.Meals.SetError(err.Error())
		return model.Meal{}, fmt.Errorf("create meal: %w", err)
	}
	a.Meals.Add(created)
	return created, nil
}

func (a *App) UpdateMeal(ctx context.Context, id int64, patch model.MealPatch) error {
	if _, err := a.api.Meals.UpdateMeal(ctx, id, patch); err != nil {
		a.Meals.SetError(err.Error())
		return fmt.Errorf("update meal %d: %w", id, err)
	}
	a.Meals.Update(id, patch)
	return nil
}

func (a *App) DeleteMeal(ctx context.Context, id int64) error {
	if err := a.api.Meals.DeleteMeal(ctx, id); err != nil {
		a.Meals.SetError(err.Error())
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	a.Meals.Remove(id)
	return nil
}

// AssignMealToDate plans a meal on a calendar day. The server's record wins:
// the returned assignment (date and category) is what lands in the store.
func (a *App) AssignMealToDate(ctx context.Context, id int64, date time.Time, mealType string) error {
	updated, err := a.api.Meals.AssignMeal(ctx, id, date.Format("2006-01-02"), mealType)
	if err != nil {
		a.Meals.SetError(err.Error())
		return fmt.Errorf("assign meal %d: %w", id, err)
	}
	a.Meals.Update(id, model.MealPatch{
		AssignedDate: updated.AssignedDate,
		Category:     &updated.Category,
	})
	return nil
}

// ToggleMealFavorite flips the flag locally after the server confirms.
func (a *App) ToggleMealFavorite(ctx context.Context, id int64) error {
	if _, err := a.api.Meals.ToggleMealFavorite(ctx, id); err != nil {
		a.Meals.SetError(err.Error())
		return fmt.Errorf("toggle favorite %d: %w", id, err)
	}
	a.Meals.ToggleFavorite(id)
	return nil
}
