package store

import (
	"sort"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

// DashboardStore holds the widget layout, the activity feed, and the metric
// summaries fetched from the server. The widget layout is a device
// preference: it persists across restarts and survives Reset, unlike the
// per-session feed and metrics.
type DashboardStore struct {
	now func() time.Time

	widgets     *signal.Signal[[]model.Widget]
	activities  *signal.Signal[[]model.Activity]
	metrics     *signal.Signal[*model.Metrics]
	userMetrics *signal.Signal[*model.UserMetrics]
	loading     *signal.Signal[bool]
	errMsg      *signal.Signal[string]

	enabled *signal.Computed[[]model.Widget]
	recent  *signal.Computed[[]model.Activity]
	today   *signal.Computed[[]model.Activity]
}

func defaultWidgets() []model.Widget {
	return []model.Widget{
		{ID: "tasks", Title: "Tasks", Type: "tasks", Enabled: true, Order: 0},
		{ID: "calendar", Title: "Calendar", Type: "calendar", Enabled: true, Order: 1},
		{ID: "rewards", Title: "Rewards", Type: "rewards", Enabled: true, Order: 2},
		{ID: "meals", Title: "Meals", Type: "meals", Enabled: true, Order: 3},
	}
}

func NewDashboardStore(prefs storage.KV) *DashboardStore {
	s := &DashboardStore{
		now:         time.Now,
		widgets:     signal.New(restore(prefs, keyDashboardWidgets, defaultWidgets())),
		activities:  signal.New([]model.Activity(nil)),
		metrics:     signal.New((*model.Metrics)(nil)),
		userMetrics: signal.New((*model.UserMetrics)(nil)),
		loading:     signal.New(false),
		errMsg:      signal.New(""),
	}

	s.enabled = signal.Derive(func() []model.Widget {
		var out []model.Widget
		for _, w := range s.widgets.Get() {
			if w.Enabled {
				out = append(out, w)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
		return out
	}, s.widgets)

	s.recent = signal.Derive(func() []model.Activity {
		activities := s.activities.Get()
		if len(activities) > 10 {
			activities = activities[:10]
		}
		return append([]model.Activity(nil), activities...)
	}, s.activities)

	s.today = signal.Derive(func() []model.Activity {
		now := s.now()
		var out []model.Activity
		for _, a := range s.activities.Get() {
			if sameDay(a.Timestamp, now) {
				out = append(out, a)
			}
		}
		return out
	}, s.activities)

	signal.Watch(func() {
		persist(prefs, keyDashboardWidgets, s.widgets.Get())
	}, s.widgets)

	return s
}

// --- Reads ---

func (s *DashboardStore) Widgets() []model.Widget {
	return append([]model.Widget(nil), s.widgets.Get()...)
}

func (s *DashboardStore) Activities() []model.Activity {
	return append([]model.Activity(nil), s.activities.Get()...)
}

func (s *DashboardStore) Metrics() *model.Metrics { return s.metrics.Get() }
func (s *DashboardStore) UserMetrics() *model.UserMetrics { return s.userMetrics.Get() }
func (s *DashboardStore) Loading() bool { return s.loading.Get() }
func (s *DashboardStore) Err() string { return s.errMsg.Get() }

func (s *DashboardStore) EnabledWidgets() []model.Widget { return s.enabled.Get() }
func (s *DashboardStore) RecentActivities() []model.Activity { return s.recent.Get() }
func (s *DashboardStore) TodayActivities() []model.Activity { return s.today.Get() }

// --- Mutations ---

func (s *DashboardStore) SetMetrics(m model.Metrics) { s.metrics.Set(&m) }

func (s *DashboardStore) SetUserMetrics(m model.UserMetrics) { s.userMetrics.Set(&m) }

func (s *DashboardStore) SetActivities(activities []model.Activity) {
	s.activities.Set(append([]model.Activity(nil), activities...))
}

// AddActivity prepends the entry so the feed reads newest first.
func (s *DashboardStore) AddActivity(a model.Activity) {
	s.activities.Update(func(activities []model.Activity) []model.Activity {
		return append([]model.Activity{a}, activities...)
	})
}

func (s *DashboardStore) SetWidgets(widgets []model.Widget) {
	s.widgets.Set(append([]model.Widget(nil), widgets...))
}

// ToggleWidget flips the enabled flag of the named widget.
func (s *DashboardStore) ToggleWidget(id string) {
	s.widgets.Update(func(widgets []model.Widget) []model.Widget {
		for i, w := range widgets {
			if w.ID == id {
				out := append([]model.Widget(nil), widgets...)
				out[i].Enabled = !w.Enabled
				return out
			}
		}
		return widgets
	})
}

// ReorderWidgets assigns Order by the given id sequence. Ids not listed keep
// their relative position after the listed ones.
func (s *DashboardStore) ReorderWidgets(ids []string) {
	s.widgets.Update(func(widgets []model.Widget) []model.Widget {
		rank := make(map[string]int, len(ids))
		for i, id := range ids {
			rank[id] = i
		}
		out := append([]model.Widget(nil), widgets...)
		next := len(ids)
		for i := range out {
			if r, ok := rank[out[i].ID]; ok {
				out[i].Order = r
			} else {
				out[i].Order = next
				next++
			}
		}
		return out
	})
}

func (s *DashboardStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *DashboardStore) SetError(msg string) { s.errMsg.Set(msg) }

// Reset clears session data. The widget layout is a device preference and is
// deliberately kept.
func (s *DashboardStore) Reset() {
	s.activities.Set(nil)
	s.metrics.Set(nil)
	s.userMetrics.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
}
