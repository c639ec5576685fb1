package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/api"
	"github.com/Coenni/above-sky-calendar/internal/app"
	"github.com/Coenni/above-sky-calendar/internal/config"
	"github.com/Coenni/above-sky-calendar/internal/logging"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	var prefs storage.KV
	if cfg.Storage.Path == "" {
		prefs = storage.NewMemory()
	} else {
		db, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("failed to open preference store: %v", err)
		}
		defer db.Close()
		prefs = db
	}

	// The client reads the token through the app so a login (or a session
	// rehydrated from storage) takes effect without rebuilding anything.
	var a *app.App
	client := api.New(cfg.API.BaseURL, func() string {
		if a == nil {
			return ""
		}
		return a.Auth.Token()
	})
	a = app.New(app.FromClient(client), prefs, logger)

	if !a.Auth.IsAuthenticated() {
		fmt.Println("No stored session. Log in through the UI to begin.")
		return
	}

	logger.Info("session restored", "user", a.Auth.DisplayName())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.LoadTasks(ctx); err != nil {
		logger.Warn("initial task load failed", "error", err)
	}
	if err := a.LoadEvents(ctx); err != nil {
		logger.Warn("initial event load failed", "error", err)
	}
	if err := a.LoadDashboard(ctx); err != nil {
		logger.Warn("dashboard load failed", "error", err)
	}

	stats := a.Tasks.Stats()
	fmt.Printf("Welcome back, %s!\n", a.Auth.DisplayName())
	fmt.Printf("Tasks: %d total, %d pending (%.0f%% done)\n", stats.Total, stats.Pending, stats.CompletionRate)
	fmt.Printf("Today: %d events, %d upcoming this week\n", len(a.Calendar.TodayEvents()), len(a.Calendar.UpcomingEvents()))
	if m := a.Dashboard.Metrics(); m != nil {
		fmt.Printf("Family: %d members, %d photos, %d lists\n", m.TotalUsers, m.TotalPhotos, m.TotalLists)
	}
}
