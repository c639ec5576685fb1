package store

import (
	"testing"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

func TestCalendarMonthGridShape(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())

	months := []time.Time{
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),  // Feb 2026 starts Sunday
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), // mid-month anchor
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),  // leap February
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, m := range months {
		s.SetCurrentMonth(m)
		days := s.DaysInMonth()

		if len(days)%7 != 0 {
			t.Errorf("%v: grid length %d not a multiple of 7", m.Month(), len(days))
		}

		first := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, m.Location())
		count := 0
		for i, d := range days {
			if d == nil {
				continue
			}
			count++
			if count == 1 && i != int(first.Weekday()) {
				t.Errorf("%v: first day at index %d, want %d", m.Month(), i, int(first.Weekday()))
			}
		}
		want := first.AddDate(0, 1, -1).Day()
		if count != want {
			t.Errorf("%v: %d non-nil days, want %d", m.Month(), count, want)
		}
	}
}

func TestCalendarMonthNavigation(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())
	s.SetCurrentMonth(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))

	s.NextMonth()
	if got := s.CurrentMonth(); got.Month() != time.February || got.Day() != 1 {
		t.Errorf("after NextMonth: %v, want Feb 1", got)
	}

	s.PreviousMonth()
	s.PreviousMonth()
	if got := s.CurrentMonth(); got.Month() != time.December || got.Year() != 2025 {
		t.Errorf("after two PreviousMonth: %v, want Dec 2025", got)
	}
}

func TestCalendarEventsForSelectedDate(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	s.SetAll([]model.Event{
		{ID: 1, Title: "dentist", StartDate: day.Add(9 * time.Hour)},
		{ID: 2, Title: "soccer", StartDate: day.AddDate(0, 0, 1)},
	})

	if got := s.EventsForSelectedDate(); got != nil {
		t.Errorf("no selection: got %d events, want none", len(got))
	}

	s.SetSelectedDate(&day)
	got := s.EventsForSelectedDate()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("EventsForSelectedDate = %+v, want only id 1", got)
	}
}

func TestCalendarUpcomingCappedAndSorted(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	var events []model.Event
	for i := 0; i < 8; i++ {
		events = append(events, model.Event{
			ID:        int64(8 - i),
			StartDate: now.AddDate(0, 0, 8-i),
		})
	}
	events = append(events, model.Event{ID: 100, StartDate: now.AddDate(0, 0, -1)})
	s.SetAll(events)

	got := s.UpcomingEvents()
	if len(got) != 5 {
		t.Fatalf("len(UpcomingEvents) = %d, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].StartDate.Before(got[i-1].StartDate) {
			t.Errorf("upcoming not sorted ascending at %d", i)
		}
	}
	for _, e := range got {
		if e.ID == 100 {
			t.Error("past event included in upcoming")
		}
	}
}

func TestCalendarVisibleDaysModes(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())
	// Wednesday.
	anchor := time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC)
	s.SetSelectedDate(&anchor)

	s.SetViewMode(ViewDay)
	if got := s.VisibleDays(); len(got) != 1 || !sameDay(got[0], anchor) {
		t.Errorf("day mode: %v", got)
	}

	s.SetViewMode(ViewFiveDay)
	got := s.VisibleDays()
	if len(got) != 5 {
		t.Fatalf("5day mode: %d days, want 5", len(got))
	}
	if got[0].Weekday() != time.Monday || got[4].Weekday() != time.Friday {
		t.Errorf("5day span = %v..%v, want Mon..Fri", got[0].Weekday(), got[4].Weekday())
	}

	s.SetViewMode(ViewWeek)
	got = s.VisibleDays()
	if len(got) != 7 || got[0].Weekday() != time.Sunday || got[6].Weekday() != time.Saturday {
		t.Errorf("week span = %v, want Sun..Sat x7", got)
	}

	s.SetViewMode(ViewMonth)
	if got = s.VisibleDays(); len(got) != 30 {
		t.Errorf("month mode: %d days, want 30 for June", len(got))
	}
}

func TestCalendarViewModePersists(t *testing.T) {
	kv := storage.NewMemory()

	first := NewCalendarStore(kv)
	first.SetViewMode(ViewWeek)

	second := NewCalendarStore(kv)
	if got := second.ViewMode(); got != ViewWeek {
		t.Errorf("ViewMode = %q, want %q", got, ViewWeek)
	}
}

func TestCalendarInvalidViewModeFallsBack(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())
	s.SetViewMode("sideways")
	if got := s.ViewMode(); got != ViewMonth {
		t.Errorf("ViewMode = %q, want %q", got, ViewMonth)
	}
}

func TestCalendarRemoveUnknownIDIsNoop(t *testing.T) {
	s := NewCalendarStore(storage.NewMemory())
	s.SetAll([]model.Event{{ID: 1}})
	s.Remove(2)
	if len(s.Events()) != 1 {
		t.Errorf("len(Events) = %d, want 1", len(s.Events()))
	}
}
