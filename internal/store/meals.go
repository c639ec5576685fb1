package store

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

type MealStats struct {
	TotalMeals     int
	WeekMeals      int
	BreakfastCount int
	LunchCount     int
	DinnerCount    int
	SnackCount     int
	FavoritesCount int
}

// MealsStore holds the meal collection and the week-planner navigation
// state. selectedWeek is always normalized to a Sunday.
type MealsStore struct {
	now func() time.Time

	meals          *signal.Signal[[]model.Meal]
	loading        *signal.Signal[bool]
	errMsg         *signal.Signal[string]
	selectedWeek   *signal.Signal[time.Time]
	categoryFilter *signal.Signal[string]

	week      *signal.Computed[[]model.Meal]
	weekByDay *signal.Computed[map[string][]model.Meal]
	filtered  *signal.Computed[[]model.Meal]
	favorites *signal.Computed[[]model.Meal]
	stats     *signal.Computed[MealStats]
	shopping  *signal.Computed[[]string]
}

func NewMealsStore(prefs storage.KV) *MealsStore {
	s := &MealsStore{
		now:            time.Now,
		meals:          signal.New([]model.Meal(nil)),
		loading:        signal.New(false),
		errMsg:         signal.New(""),
		selectedWeek:   signal.New(startOfWeek(time.Now())),
		categoryFilter: signal.New(restore(prefs, keyMealsFilter, "all")),
	}

	s.week = signal.Derive(func() []model.Meal {
		weekStart := s.selectedWeek.Get()
		weekEnd := weekStart.AddDate(0, 0, 7)
		var out []model.Meal
		for _, m := range s.meals.Get() {
			if m.AssignedDate == nil {
				continue
			}
			d := *m.AssignedDate
			if !d.Before(weekStart) && d.Before(weekEnd) {
				out = append(out, m)
			}
		}
		return out
	}, s.meals, s.selectedWeek)

	// All seven ISO-date keys of the week exist even when empty.
	s.weekByDay = signal.Derive(func() map[string][]model.Meal {
		weekStart := s.selectedWeek.Get()
		byDay := make(map[string][]model.Meal, 7)
		for i := 0; i < 7; i++ {
			byDay[isoDate(weekStart.AddDate(0, 0, i))] = nil
		}
		for _, m := range s.week.Get() {
			key := isoDate(*m.AssignedDate)
			byDay[key] = append(byDay[key], m)
		}
		return byDay
	}, s.selectedWeek, s.week)

	s.filtered = signal.Derive(func() []model.Meal {
		meals := s.meals.Get()
		filter := s.categoryFilter.Get()
		switch filter {
		case "all":
			return append([]model.Meal(nil), meals...)
		case "favorite":
			var out []model.Meal
			for _, m := range meals {
				if m.IsFavorite {
					out = append(out, m)
				}
			}
			return out
		default:
			var out []model.Meal
			for _, m := range meals {
				if m.Category == filter {
					out = append(out, m)
				}
			}
			return out
		}
	}, s.meals, s.categoryFilter)

	s.favorites = signal.Derive(func() []model.Meal {
		var out []model.Meal
		for _, m := range s.meals.Get() {
			if m.IsFavorite {
				out = append(out, m)
			}
		}
		return out
	}, s.meals)

	s.stats = signal.Derive(func() MealStats {
		week := s.week.Get()
		st := MealStats{
			TotalMeals:     len(s.meals.Get()),
			WeekMeals:      len(week),
			FavoritesCount: len(s.favorites.Get()),
		}
		for _, m := range week {
			switch m.Category {
			case model.MealBreakfast:
				st.BreakfastCount++
			case model.MealLunch:
				st.LunchCount++
			case model.MealDinner:
				st.DinnerCount++
			case model.MealSnack:
				st.SnackCount++
			}
		}
		return st
	}, s.meals, s.week, s.favorites)

	// Union of the week's ingredient lists. Ingredients are stored as a
	// JSON-encoded string array; malformed entries are skipped.
	s.shopping = signal.Derive(func() []string {
		seen := make(map[string]struct{})
		for _, m := range s.week.Get() {
			if m.Ingredients == "" {
				continue
			}
			var list []string
			if err := json.Unmarshal([]byte(m.Ingredients), &list); err != nil {
				continue
			}
			for _, ing := range list {
				seen[ing] = struct{}{}
			}
		}
		out := make([]string, 0, len(seen))
		for ing := range seen {
			out = append(out, ing)
		}
		sort.Strings(out)
		return out
	}, s.week)

	signal.Watch(func() {
		persist(prefs, keyMealsFilter, s.categoryFilter.Get())
	}, s.categoryFilter)

	return s
}

// --- Reads ---

func (s *MealsStore) Meals() []model.Meal {
	return append([]model.Meal(nil), s.meals.Get()...)
}

func (s *MealsStore) Loading() bool { return s.loading.Get() }
func (s *MealsStore) Err() string { return s.errMsg.Get() }
func (s *MealsStore) SelectedWeek() time.Time { return s.selectedWeek.Get() }
func (s *MealsStore) CategoryFilter() string { return s.categoryFilter.Get() }

func (s *MealsStore) WeekMeals() []model.Meal { return s.week.Get() }
func (s *MealsStore) WeekMealsByDay() map[string][]model.Meal { return s.weekByDay.Get() }
func (s *MealsStore) FilteredMeals() []model.Meal { return s.filtered.Get() }
func (s *MealsStore) FavoriteMeals() []model.Meal { return s.favorites.Get() }
func (s *MealsStore) Stats() MealStats { return s.stats.Get() }
func (s *MealsStore) ShoppingList() []string { return s.shopping.Get() }

// WeekMealsByCategory slices the selected week's meals to one category.
func (s *MealsStore) WeekMealsByCategory(category string) []model.Meal {
	var out []model.Meal
	for _, m := range s.week.Get() {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// MealsForDate returns meals assigned to the given calendar day.
func (s *MealsStore) MealsForDate(day time.Time) []model.Meal {
	var out []model.Meal
	for _, m := range s.meals.Get() {
		if m.AssignedDate != nil && sameDay(*m.AssignedDate, day) {
			out = append(out, m)
		}
	}
	return out
}

// --- Mutations ---

func (s *MealsStore) SetAll(meals []model.Meal) {
	s.meals.Set(append([]model.Meal(nil), meals...))
}

func (s *MealsStore) Add(m model.Meal) {
	s.meals.Update(func(meals []model.Meal) []model.Meal {
		return append(append([]model.Meal(nil), meals...), m)
	})
}

func (s *MealsStore) Update(id int64, patch model.MealPatch) {
	s.meals.Update(func(meals []model.Meal) []model.Meal {
		for i, m := range meals {
			if m.ID == id {
				out := append([]model.Meal(nil), meals...)
				out[i] = patch.Apply(m)
				return out
			}
		}
		return meals
	})
}

func (s *MealsStore) Remove(id int64) {
	s.meals.Update(func(meals []model.Meal) []model.Meal {
		for i, m := range meals {
			if m.ID == id {
				return append(append([]model.Meal(nil), meals[:i]...), meals[i+1:]...)
			}
		}
		return meals
	})
}

// ToggleFavorite flips the favorite flag on the first meal with a matching id.
func (s *MealsStore) ToggleFavorite(id int64) {
	s.meals.Update(func(meals []model.Meal) []model.Meal {
		for i, m := range meals {
			if m.ID == id {
				out := append([]model.Meal(nil), meals...)
				out[i].IsFavorite = !m.IsFavorite
				return out
			}
		}
		return meals
	})
}

// SetSelectedWeek normalizes to the Sunday of the given date's week.
func (s *MealsStore) SetSelectedWeek(d time.Time) {
	s.selectedWeek.Set(startOfWeek(d))
}

func (s *MealsStore) PreviousWeek() {
	s.selectedWeek.Update(func(w time.Time) time.Time { return w.AddDate(0, 0, -7) })
}

func (s *MealsStore) NextWeek() {
	s.selectedWeek.Update(func(w time.Time) time.Time { return w.AddDate(0, 0, 7) })
}

func (s *MealsStore) SetCategoryFilter(filter string) { s.categoryFilter.Set(filter) }
func (s *MealsStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *MealsStore) SetError(msg string) { s.errMsg.Set(msg) }

func (s *MealsStore) Reset() {
	s.meals.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
	s.selectedWeek.Set(startOfWeek(s.now()))
	s.categoryFilter.Set("all")
}
