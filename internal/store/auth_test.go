package store

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthSessionRoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	token := signedToken(t, time.Now().Add(time.Hour))

	first := NewAuthStore(kv)
	first.SetSession(token, model.User{ID: 1, Username: "alice", RewardPoints: 30})

	second := NewAuthStore(kv)
	if !second.IsAuthenticated() {
		t.Fatal("rehydrated store not authenticated")
	}
	if got := second.Token(); got != token {
		t.Errorf("Token = %q, want stored token", got)
	}
	u, ok := second.User()
	if !ok || u.Username != "alice" || u.RewardPoints != 30 {
		t.Errorf("User = %+v, want alice with 30 points", u)
	}
}

func TestAuthExpiredTokenNotRehydrated(t *testing.T) {
	kv := storage.NewMemory()
	token := signedToken(t, time.Now().Add(-time.Hour))

	first := NewAuthStore(kv)
	first.SetSession(token, model.User{ID: 1, Username: "alice"})

	second := NewAuthStore(kv)
	if second.IsAuthenticated() {
		t.Error("expired session rehydrated")
	}

	// The stale mirror is also discarded.
	var stored string
	if found, _ := kv.Get("token", &stored); found {
		t.Error("expired token left in storage")
	}
}

func TestAuthGarbageTokenNotRehydrated(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Put("token", "not-a-jwt"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Put("currentUser", model.User{ID: 1}); err != nil {
		t.Fatal(err)
	}

	s := NewAuthStore(kv)
	if s.IsAuthenticated() {
		t.Error("unparseable token rehydrated")
	}
}

func TestAuthClearSession(t *testing.T) {
	kv := storage.NewMemory()
	s := NewAuthStore(kv)
	s.SetSession(signedToken(t, time.Now().Add(time.Hour)), model.User{ID: 1})

	s.ClearSession()

	if s.IsAuthenticated() {
		t.Error("still authenticated after ClearSession")
	}
	var stored string
	if found, _ := kv.Get("token", &stored); found {
		t.Error("token left in storage after ClearSession")
	}
}

func TestAuthDerivedViews(t *testing.T) {
	s := NewAuthStore(storage.NewMemory())

	if s.DisplayName() != "" || s.Points() != 0 || s.IsParent() {
		t.Error("logged-out derived views not at zero values")
	}

	s.SetSession(signedToken(t, time.Now().Add(time.Hour)), model.User{
		ID: 1, Username: "alice", IsParent: true,
		RewardPoints: 12, Roles: "USER, ADMIN",
	})

	if got := s.DisplayName(); got != "alice" {
		t.Errorf("DisplayName = %q, want username fallback", got)
	}
	name := "Mom"
	s.UpdateUser(model.UserPatch{DisplayName: &name})
	if got := s.DisplayName(); got != "Mom" {
		t.Errorf("DisplayName = %q, want Mom", got)
	}

	if !s.IsParent() || !s.HasAdminRole() {
		t.Error("IsParent/HasAdminRole = false, want true")
	}
	if got := s.Roles(); len(got) != 2 || got[1] != "ADMIN" {
		t.Errorf("Roles = %v, want [USER ADMIN]", got)
	}

	info := s.UserInfo()
	if info == nil || info.DisplayName != "Mom" || info.Points != 12 {
		t.Errorf("UserInfo = %+v", info)
	}
}

func TestAuthPointBalance(t *testing.T) {
	kv := storage.NewMemory()
	s := NewAuthStore(kv)
	s.SetSession(signedToken(t, time.Now().Add(time.Hour)), model.User{ID: 1, RewardPoints: 10})

	s.AddUserPoints(5)
	if got := s.Points(); got != 15 {
		t.Errorf("Points = %d, want 15", got)
	}
	s.SetUserPoints(100)
	if got := s.Points(); got != 100 {
		t.Errorf("Points = %d, want 100", got)
	}

	// Balance changes are mirrored for the next rehydrate.
	second := NewAuthStore(kv)
	if got := second.Points(); got != 100 {
		t.Errorf("rehydrated Points = %d, want 100", got)
	}
}

func TestAuthUpdateUserWhenLoggedOut(t *testing.T) {
	s := NewAuthStore(storage.NewMemory())
	name := "ghost"
	s.UpdateUser(model.UserPatch{DisplayName: &name})
	if _, ok := s.User(); ok {
		t.Error("UpdateUser created a user from nothing")
	}
}
