package store

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

func TestMonthGridInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1990, 2100).Draw(t, "year")
		month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))

		s := NewCalendarStore(storage.NewMemory())
		s.SetCurrentMonth(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
		days := s.DaysInMonth()

		if len(days)%7 != 0 {
			t.Fatalf("grid length %d not a multiple of 7", len(days))
		}

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		wantDays := first.AddDate(0, 1, -1).Day()
		seen := 0
		for i, d := range days {
			if d == nil {
				continue
			}
			seen++
			if d.Day() != seen {
				t.Fatalf("slot %d holds day %d, want %d", i, d.Day(), seen)
			}
			if int(d.Weekday()) != i%7 {
				t.Fatalf("day %d in column %d, want %d", d.Day(), i%7, int(d.Weekday()))
			}
		}
		if seen != wantDays {
			t.Fatalf("%d days in grid, want %d", seen, wantDays)
		}
	})
}

func TestWeekBucketingPartitionsMeals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewMealsStore(storage.NewMemory())
		weekStart := time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)
		s.SetSelectedWeek(weekStart)

		n := rapid.IntRange(0, 30).Draw(t, "n")
		var meals []model.Meal
		inWeek := 0
		for i := 0; i < n; i++ {
			offset := rapid.IntRange(-10, 17).Draw(t, "offset")
			d := weekStart.AddDate(0, 0, offset)
			meals = append(meals, model.Meal{ID: int64(i + 1), AssignedDate: &d})
			if offset >= 0 && offset < 7 {
				inWeek++
			}
		}
		s.SetAll(meals)

		byDay := s.WeekMealsByDay()
		if len(byDay) != 7 {
			t.Fatalf("len(byDay) = %d, want 7", len(byDay))
		}
		total := 0
		for day, bucket := range byDay {
			for _, m := range bucket {
				if isoDate(*m.AssignedDate) != day {
					t.Fatalf("meal %d bucketed under %s, assigned %s", m.ID, day, isoDate(*m.AssignedDate))
				}
			}
			total += len(bucket)
		}
		if total != inWeek {
			t.Fatalf("%d meals bucketed, want %d", total, inWeek)
		}
	})
}

func TestCompletionRateBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewTasksStore(storage.NewMemory())
		statuses := []string{model.TaskStatusPending, model.TaskStatusInProgress, model.TaskStatusCompleted}

		n := rapid.IntRange(0, 25).Draw(t, "n")
		var tasks []model.Task
		for i := 0; i < n; i++ {
			tasks = append(tasks, model.Task{
				ID:     int64(i + 1),
				Status: rapid.SampledFrom(statuses).Draw(t, "status"),
			})
		}
		s.SetAll(tasks)

		st := s.Stats()
		if st.CompletionRate < 0 || st.CompletionRate > 100 {
			t.Fatalf("CompletionRate = %v out of [0,100]", st.CompletionRate)
		}
		if st.Completed+st.Pending+st.InProgress != st.Total {
			t.Fatalf("status counts %d+%d+%d != total %d", st.Completed, st.Pending, st.InProgress, st.Total)
		}
		if n == 0 && st.CompletionRate != 0 {
			t.Fatalf("empty collection rate = %v, want 0", st.CompletionRate)
		}
	})
}

func TestRedemptionSequenceConservesPoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewRewardsStore(storage.NewMemory())
		initial := rapid.IntRange(0, 1000).Draw(t, "initial")
		s.SetUserPoints(initial)

		spent := 0
		n := rapid.IntRange(0, 10).Draw(t, "n")
		for i := 0; i < n; i++ {
			cost := rapid.IntRange(1, 200).Draw(t, "cost")
			s.AddRedemption(model.RewardRedemption{ID: int64(i + 1), PointsSpent: cost})
			spent += cost
		}

		if got := s.UserPoints(); got != initial-spent {
			t.Fatalf("UserPoints = %d, want %d", got, initial-spent)
		}
		if got := len(s.Redemptions()); got != n {
			t.Fatalf("len(Redemptions) = %d, want %d", got, n)
		}
	})
}

func TestListRemovalNeverOrphansItems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewListsStore(storage.NewMemory())

		nLists := rapid.IntRange(1, 8).Draw(t, "lists")
		var lists []model.FamilyList
		for i := 0; i < nLists; i++ {
			lists = append(lists, model.FamilyList{ID: int64(i + 1)})
		}
		s.SetLists(lists)

		nItems := rapid.IntRange(0, 30).Draw(t, "items")
		var items []model.ListItem
		for i := 0; i < nItems; i++ {
			items = append(items, model.ListItem{
				ID:     int64(i + 1),
				ListID: int64(rapid.IntRange(1, nLists).Draw(t, "listId")),
			})
		}
		s.SetItems(items)

		removals := rapid.IntRange(0, nLists).Draw(t, "removals")
		for i := 0; i < removals; i++ {
			s.RemoveList(int64(rapid.IntRange(1, nLists).Draw(t, "victim")))
		}

		live := make(map[int64]bool)
		for _, l := range s.Lists() {
			live[l.ID] = true
		}
		for _, it := range s.Items() {
			if !live[it.ListID] {
				t.Fatalf("item %d references removed list %d", it.ID, it.ListID)
			}
		}
	})
}
