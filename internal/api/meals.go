package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListMeals(ctx context.Context) ([]model.Meal, error) {
	var out []model.Meal
	if err := c.get(ctx, "/api/meals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWeeklyMeals fetches the meals planned for the week starting at the
// given ISO date.
func (c *Client) ListWeeklyMeals(ctx context.Context, startDate string) ([]model.Meal, error) {
	q := url.Values{"startDate": {startDate}}
	var out []model.Meal
	if err := c.get(ctx, "/api/meals/weekly", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMeal(ctx context.Context, m model.Meal) (model.Meal, error) {
	var out model.Meal
	if err := c.post(ctx, "/api/meals", m, &out); err != nil {
		return model.Meal{}, err
	}
	return out, nil
}

func (c *Client) UpdateMeal(ctx context.Context, id int64, patch model.MealPatch) (model.Meal, error) {
	var out model.Meal
	if err := c.put(ctx, fmt.Sprintf("/api/meals/%d", id), patch, &out); err != nil {
		return model.Meal{}, err
	}
	return out, nil
}

func (c *Client) DeleteMeal(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/meals/%d", id))
}

// AssignMeal plans an existing meal on a date as the given meal type.
func (c *Client) AssignMeal(ctx context.Context, id int64, date, mealType string) (model.Meal, error) {
	q := url.Values{"date": {date}, "mealType": {mealType}}
	var out model.Meal
	path := fmt.Sprintf("/api/meals/%d/assign", id)
	if err := c.do(ctx, http.MethodPost, path, q, nil, &out); err != nil {
		return model.Meal{}, err
	}
	return out, nil
}

// ToggleMealFavorite flips the server-side favorite flag.
func (c *Client) ToggleMealFavorite(ctx context.Context, id int64) (model.Meal, error) {
	var out model.Meal
	if err := c.put(ctx, fmt.Sprintf("/api/meals/%d/favorite", id), nil, &out); err != nil {
		return model.Meal{}, err
	}
	return out, nil
}
