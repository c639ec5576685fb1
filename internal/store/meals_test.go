package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

func dateOn(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMealsSelectedWeekNormalizesToSunday(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())

	// Wednesday.
	s.SetSelectedWeek(time.Date(2026, 6, 10, 18, 45, 0, 0, time.UTC))

	got := s.SelectedWeek()
	if got.Weekday() != time.Sunday {
		t.Errorf("SelectedWeek weekday = %v, want Sunday", got.Weekday())
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("SelectedWeek not midnight: %v", got)
	}
	if got.Day() != 7 {
		t.Errorf("SelectedWeek day = %d, want 7", got.Day())
	}
}

func TestMealsWeekWindow(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	s.SetSelectedWeek(time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)) // Sunday

	s.SetAll([]model.Meal{
		{ID: 1, AssignedDate: dateOn(2026, 6, 7)},  // first day
		{ID: 2, AssignedDate: dateOn(2026, 6, 13)}, // last day
		{ID: 3, AssignedDate: dateOn(2026, 6, 14)}, // next Sunday, excluded
		{ID: 4},                                    // unassigned, excluded
	})

	got := s.WeekMeals()
	if len(got) != 2 {
		t.Fatalf("len(WeekMeals) = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("WeekMeals ids = %d,%d, want 1,2", got[0].ID, got[1].ID)
	}
}

func TestMealsWeekByDayHasAllSevenKeys(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	s.SetSelectedWeek(time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC))
	s.SetAll([]model.Meal{{ID: 1, AssignedDate: dateOn(2026, 6, 9)}})

	byDay := s.WeekMealsByDay()
	if len(byDay) != 7 {
		t.Fatalf("len(WeekMealsByDay) = %d, want 7", len(byDay))
	}
	if got := byDay["2026-06-09"]; len(got) != 1 || got[0].ID != 1 {
		t.Errorf("byDay[2026-06-09] = %+v, want meal 1", got)
	}
	if got, ok := byDay["2026-06-08"]; !ok || got != nil {
		t.Errorf("empty day missing or non-nil: %v %v", ok, got)
	}
}

func TestMealsWeekNavigation(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	start := time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)
	s.SetSelectedWeek(start)

	s.NextWeek()
	if got := s.SelectedWeek(); !got.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("NextWeek = %v, want %v", got, start.AddDate(0, 0, 7))
	}
	s.PreviousWeek()
	s.PreviousWeek()
	if got := s.SelectedWeek(); !got.Equal(start.AddDate(0, 0, -7)) {
		t.Errorf("PreviousWeek = %v, want %v", got, start.AddDate(0, 0, -7))
	}
}

func TestMealsShoppingListDedupesAndSorts(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	s.SetSelectedWeek(time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC))
	s.SetAll([]model.Meal{
		{ID: 1, AssignedDate: dateOn(2026, 6, 8), Ingredients: `["eggs","milk"]`},
		{ID: 2, AssignedDate: dateOn(2026, 6, 9), Ingredients: `["milk","bread"]`},
		{ID: 3, AssignedDate: dateOn(2026, 6, 10), Ingredients: `not json`},
		{ID: 4, AssignedDate: dateOn(2026, 6, 20), Ingredients: `["outside week"]`},
	})

	got := s.ShoppingList()
	want := []string{"bread", "eggs", "milk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ShoppingList = %v, want %v", got, want)
	}
}

func TestMealsToggleFavorite(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	s.SetAll([]model.Meal{{ID: 1, Name: "tacos"}})

	s.ToggleFavorite(1)
	if got := s.FavoriteMeals(); len(got) != 1 {
		t.Fatalf("len(FavoriteMeals) = %d, want 1", len(got))
	}
	s.ToggleFavorite(1)
	if got := s.FavoriteMeals(); len(got) != 0 {
		t.Errorf("len(FavoriteMeals) = %d, want 0", len(got))
	}
}

func TestMealsCategoryFilterPersists(t *testing.T) {
	kv := storage.NewMemory()

	first := NewMealsStore(kv)
	first.SetCategoryFilter(model.MealDinner)

	second := NewMealsStore(kv)
	if got := second.CategoryFilter(); got != model.MealDinner {
		t.Errorf("CategoryFilter = %q, want %q", got, model.MealDinner)
	}
}

func TestMealsFilteredByFavorite(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	s.SetAll([]model.Meal{
		{ID: 1, IsFavorite: true},
		{ID: 2},
	})

	s.SetCategoryFilter("favorite")
	got := s.FilteredMeals()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("FilteredMeals = %+v, want only id 1", got)
	}
}

func TestMealsWeekStats(t *testing.T) {
	s := NewMealsStore(storage.NewMemory())
	s.SetSelectedWeek(time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC))
	s.SetAll([]model.Meal{
		{ID: 1, Category: model.MealBreakfast, AssignedDate: dateOn(2026, 6, 8)},
		{ID: 2, Category: model.MealDinner, AssignedDate: dateOn(2026, 6, 8)},
		{ID: 3, Category: model.MealDinner, AssignedDate: dateOn(2026, 6, 9)},
		{ID: 4, Category: model.MealDinner}, // unassigned
	})

	st := s.Stats()
	if st.TotalMeals != 4 || st.WeekMeals != 3 {
		t.Errorf("TotalMeals/WeekMeals = %d/%d, want 4/3", st.TotalMeals, st.WeekMeals)
	}
	if st.BreakfastCount != 1 || st.DinnerCount != 2 {
		t.Errorf("BreakfastCount/DinnerCount = %d/%d, want 1/2", st.BreakfastCount, st.DinnerCount)
	}
}
