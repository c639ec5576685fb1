package store

import (
	"sort"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

// Calendar view modes.
const (
	ViewMonth   = "month"
	ViewWeek    = "week"
	ViewFiveDay = "5day"
	ViewDay     = "day"
)

type CalendarStats struct {
	TotalEvents    int
	TodayEvents    int
	UpcomingEvents int
}

// CalendarStore holds the flat event collection plus the month/selection
// navigation state. The view-mode preference survives restarts.
type CalendarStore struct {
	now func() time.Time

	events       *signal.Signal[[]model.Event]
	loading      *signal.Signal[bool]
	errMsg       *signal.Signal[string]
	selectedDate *signal.Signal[*time.Time]
	currentMonth *signal.Signal[time.Time]
	viewMode     *signal.Signal[string]

	daysInMonth *signal.Computed[[]*time.Time]
	selected    *signal.Computed[[]model.Event]
	upcoming    *signal.Computed[[]model.Event]
	today       *signal.Computed[[]model.Event]
	stats       *signal.Computed[CalendarStats]
}

func NewCalendarStore(prefs storage.KV) *CalendarStore {
	s := &CalendarStore{
		now:          time.Now,
		events:       signal.New([]model.Event(nil)),
		loading:      signal.New(false),
		errMsg:       signal.New(""),
		selectedDate: signal.New((*time.Time)(nil)),
		currentMonth: signal.New(time.Now()),
		viewMode:     signal.New(validViewMode(restore(prefs, keyCalendarViewMode, ViewMonth))),
	}

	// Flat ordered day slots filling a 7-column grid starting Sunday.
	// Leading and trailing slots outside the month are nil.
	s.daysInMonth = signal.Derive(func() []*time.Time {
		anchor := s.currentMonth.Get()
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		daysInMonth := first.AddDate(0, 1, -1).Day()

		days := make([]*time.Time, 0, 42)
		for i := 0; i < int(first.Weekday()); i++ {
			days = append(days, nil)
		}
		for day := 1; day <= daysInMonth; day++ {
			d := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
			days = append(days, &d)
		}
		for len(days)%7 != 0 {
			days = append(days, nil)
		}
		return days
	}, s.currentMonth)

	s.selected = signal.Derive(func() []model.Event {
		sel := s.selectedDate.Get()
		if sel == nil {
			return nil
		}
		return filterEventsByDay(s.events.Get(), *sel)
	}, s.events, s.selectedDate)

	s.upcoming = signal.Derive(func() []model.Event {
		now := s.now()
		var out []model.Event
		for _, e := range s.events.Get() {
			if !e.StartDate.Before(now) {
				out = append(out, e)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StartDate.Before(out[j].StartDate)
		})
		if len(out) > 5 {
			out = out[:5]
		}
		return out
	}, s.events)

	s.today = signal.Derive(func() []model.Event {
		return filterEventsByDay(s.events.Get(), s.now())
	}, s.events)

	s.stats = signal.Derive(func() CalendarStats {
		return CalendarStats{
			TotalEvents:    len(s.events.Get()),
			TodayEvents:    len(s.today.Get()),
			UpcomingEvents: len(s.upcoming.Get()),
		}
	}, s.events, s.today, s.upcoming)

	signal.Watch(func() {
		persist(prefs, keyCalendarViewMode, s.viewMode.Get())
	}, s.viewMode)

	return s
}

func validViewMode(mode string) string {
	switch mode {
	case ViewMonth, ViewWeek, ViewFiveDay, ViewDay:
		return mode
	default:
		return ViewMonth
	}
}

func filterEventsByDay(events []model.Event, day time.Time) []model.Event {
	var out []model.Event
	for _, e := range events {
		if sameDay(e.StartDate, day) {
			out = append(out, e)
		}
	}
	return out
}

// --- Reads ---

func (s *CalendarStore) Events() []model.Event {
	return append([]model.Event(nil), s.events.Get()...)
}

func (s *CalendarStore) Loading() bool { return s.loading.Get() }
func (s *CalendarStore) Err() string { return s.errMsg.Get() }
func (s *CalendarStore) SelectedDate() *time.Time { return s.selectedDate.Get() }
func (s *CalendarStore) CurrentMonth() time.Time { return s.currentMonth.Get() }
func (s *CalendarStore) ViewMode() string { return s.viewMode.Get() }

func (s *CalendarStore) DaysInMonth() []*time.Time { return s.daysInMonth.Get() }

func (s *CalendarStore) EventsForSelectedDate() []model.Event { return s.selected.Get() }
func (s *CalendarStore) UpcomingEvents() []model.Event { return s.upcoming.Get() }
func (s *CalendarStore) TodayEvents() []model.Event { return s.today.Get() }
func (s *CalendarStore) Stats() CalendarStats { return s.stats.Get() }

// EventsForDate returns events starting on the given calendar day.
func (s *CalendarStore) EventsForDate(day time.Time) []model.Event {
	return filterEventsByDay(s.events.Get(), day)
}

// IsToday reports whether the given date is today, by calendar-day equality.
func (s *CalendarStore) IsToday(day time.Time) bool {
	return sameDay(day, s.now())
}

// VisibleDays computes the date range the current view mode shows, anchored
// on the selected date (today when nothing is selected): a single day, the
// Monday–Friday of the anchor's week, the Sunday–Saturday week, or every day
// of the current month.
func (s *CalendarStore) VisibleDays() []time.Time {
	anchor := s.now()
	if sel := s.selectedDate.Get(); sel != nil {
		anchor = *sel
	}
	anchor = startOfDay(anchor)

	switch s.viewMode.Get() {
	case ViewDay:
		return []time.Time{anchor}
	case ViewFiveDay:
		monday := startOfWeek(anchor).AddDate(0, 0, 1)
		return daySpan(monday, 5)
	case ViewWeek:
		return daySpan(startOfWeek(anchor), 7)
	default:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return daySpan(first, first.AddDate(0, 1, -1).Day())
	}
}

func daySpan(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// --- Mutations ---

func (s *CalendarStore) SetAll(events []model.Event) {
	s.events.Set(append([]model.Event(nil), events...))
}

func (s *CalendarStore) Add(e model.Event) {
	s.events.Update(func(events []model.Event) []model.Event {
		return append(append([]model.Event(nil), events...), e)
	})
}

func (s *CalendarStore) Update(id int64, patch model.EventPatch) {
	s.events.Update(func(events []model.Event) []model.Event {
		for i, e := range events {
			if e.ID == id {
				out := append([]model.Event(nil), events...)
				out[i] = patch.Apply(e)
				return out
			}
		}
		return events
	})
}

func (s *CalendarStore) Remove(id int64) {
	s.events.Update(func(events []model.Event) []model.Event {
		for i, e := range events {
			if e.ID == id {
				return append(append([]model.Event(nil), events[:i]...), events[i+1:]...)
			}
		}
		return events
	})
}

func (s *CalendarStore) SetSelectedDate(d *time.Time) { s.selectedDate.Set(d) }
func (s *CalendarStore) SetCurrentMonth(m time.Time) { s.currentMonth.Set(m) }

func (s *CalendarStore) PreviousMonth() {
	s.currentMonth.Update(func(m time.Time) time.Time {
		return time.Date(m.Year(), m.Month()-1, 1, 0, 0, 0, 0, m.Location())
	})
}

func (s *CalendarStore) NextMonth() {
	s.currentMonth.Update(func(m time.Time) time.Time {
		return time.Date(m.Year(), m.Month()+1, 1, 0, 0, 0, 0, m.Location())
	})
}

func (s *CalendarStore) SetViewMode(mode string) { s.viewMode.Set(validViewMode(mode)) }
func (s *CalendarStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *CalendarStore) SetError(msg string) { s.errMsg.Set(msg) }

func (s *CalendarStore) Reset() {
	s.events.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
	s.selectedDate.Set(nil)
	s.currentMonth.Set(s.now())
}
