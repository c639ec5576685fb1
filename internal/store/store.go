// Package store holds the per-domain state containers the UI reads from.
// Each store owns one in-memory collection plus a few scalar signals, and
// exposes derived views that recompute whenever their inputs change. Stores
// never perform I/O beyond mirroring preferences and session data to the
// durable key/value storage; network round trips belong to the api adapters
// and are sequenced by the app layer.
package store

import (
	"log/slog"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/storage"
)

// Preference and session storage keys. Shared storage is namespaced by key
// only; all access is synchronous.
const (
	keyTasksFilter      = "tasks-filter"
	keyMealsFilter      = "meals-category-filter"
	keyRewardsFilter    = "rewards-filter"
	keyListsTypeFilter  = "lists-type-filter"
	keyListsArchived    = "lists-show-archived"
	keyCalendarViewMode = "calendar-view-mode"
	keyPhotosTagFilter  = "photos-tag-filter"
	keyDashboardWidgets = "dashboard-widgets"
	keyToken            = "token"
	keyCurrentUser      = "currentUser"
	keyUserMode         = "user-mode"
	keyModePinHash      = "mode-pin-hash"
)

// restore reads a persisted preference, falling back on absence or decode
// failure. Stores cannot fail, so storage errors only log.
func restore[T any](kv storage.KV, key string, fallback T) T {
	var v T
	found, err := kv.Get(key, &v)
	if err != nil {
		slog.Warn("restore preference", "key", key, "error", err)
		return fallback
	}
	if !found {
		return fallback
	}
	return v
}

func persist(kv storage.KV, key string, v any) {
	if err := kv.Put(key, v); err != nil {
		slog.Warn("persist preference", "key", key, "error", err)
	}
}

func unpersist(kv storage.KV, key string) {
	if err := kv.Delete(key); err != nil {
		slog.Warn("delete preference", "key", key, "error", err)
	}
}

// sameDay reports calendar-day equality (year, month, day), not timestamp
// equality.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight on the Sunday of t's week.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
