package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

// UserInfo is the compact identity summary the header widgets read.
type UserInfo struct {
	ID          int64
	Username    string
	DisplayName string
	Color       string
	IsParent    bool
	Points      int
}

// AuthStore holds the session: the bearer token and the authenticated user.
// Both are mirrored to durable storage so a restart resumes the session, and
// a token whose exp claim has passed is discarded on rehydrate rather than
// restored.
type AuthStore struct {
	prefs storage.KV
	now   func() time.Time

	token  *signal.Signal[string]
	user   *signal.Signal[*model.User]
	errMsg *signal.Signal[string]

	authenticated *signal.Computed[bool]
	displayName   *signal.Computed[string]
	points        *signal.Computed[int]
	isParent      *signal.Computed[bool]
	roles         *signal.Computed[[]string]
	hasAdmin      *signal.Computed[bool]
	userInfo      *signal.Computed[*UserInfo]
}

func NewAuthStore(prefs storage.KV) *AuthStore {
	s := &AuthStore{
		prefs:  prefs,
		now:    time.Now,
		token:  signal.New(""),
		user:   signal.New((*model.User)(nil)),
		errMsg: signal.New(""),
	}

	s.authenticated = signal.Derive(func() bool {
		return s.token.Get() != "" && s.user.Get() != nil
	}, s.token, s.user)

	s.displayName = signal.Derive(func() string {
		u := s.user.Get()
		if u == nil {
			return ""
		}
		if u.DisplayName != "" {
			return u.DisplayName
		}
		return u.Username
	}, s.user)

	s.points = signal.Derive(func() int {
		if u := s.user.Get(); u != nil {
			return u.RewardPoints
		}
		return 0
	}, s.user)

	s.isParent = signal.Derive(func() bool {
		u := s.user.Get()
		return u != nil && u.IsParent
	}, s.user)

	s.roles = signal.Derive(func() []string {
		if u := s.user.Get(); u != nil {
			return u.RoleList()
		}
		return nil
	}, s.user)

	s.hasAdmin = signal.Derive(func() bool {
		for _, r := range s.roles.Get() {
			if r == "ADMIN" || r == "ROLE_ADMIN" {
				return true
			}
		}
		return false
	}, s.roles)

	s.userInfo = signal.Derive(func() *UserInfo {
		u := s.user.Get()
		if u == nil {
			return nil
		}
		return &UserInfo{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: s.displayName.Get(),
			Color:       u.Color,
			IsParent:    u.IsParent,
			Points:      u.RewardPoints,
		}
	}, s.user, s.displayName)

	s.rehydrate()
	return s
}

// rehydrate restores a previous session from storage. An expired token
// clears the stored session instead of resuming it.
func (s *AuthStore) rehydrate() {
	var token string
	if found, err := s.prefs.Get(keyToken, &token); err != nil || !found || token == "" {
		return
	}
	if tokenExpired(token, s.now()) {
		unpersist(s.prefs, keyToken)
		unpersist(s.prefs, keyCurrentUser)
		return
	}
	var u model.User
	if found, err := s.prefs.Get(keyCurrentUser, &u); err != nil || !found {
		return
	}
	s.token.Set(token)
	s.user.Set(&u)
}

// tokenExpired inspects the JWT exp claim without verifying the signature;
// the server remains the authority, this only avoids resuming a session that
// is guaranteed to be rejected. Unparseable tokens count as expired.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(now)
}

// --- Reads ---

func (s *AuthStore) Token() string { return s.token.Get() }
func (s *AuthStore) Err() string { return s.errMsg.Get() }

// User returns a copy of the session user, or false when logged out.
func (s *AuthStore) User() (model.User, bool) {
	u := s.user.Get()
	if u == nil {
		return model.User{}, false
	}
	return *u, true
}

func (s *AuthStore) IsAuthenticated() bool { return s.authenticated.Get() }
func (s *AuthStore) DisplayName() string { return s.displayName.Get() }
func (s *AuthStore) Points() int { return s.points.Get() }
func (s *AuthStore) IsParent() bool { return s.isParent.Get() }
func (s *AuthStore) Roles() []string { return s.roles.Get() }
func (s *AuthStore) HasAdminRole() bool { return s.hasAdmin.Get() }
func (s *AuthStore) UserInfo() *UserInfo { return s.userInfo.Get() }

// --- Mutations ---

// SetSession stores the token and user together and mirrors both to durable
// storage.
func (s *AuthStore) SetSession(token string, u model.User) {
	s.token.Set(token)
	s.user.Set(&u)
	persist(s.prefs, keyToken, token)
	persist(s.prefs, keyCurrentUser, u)
}

// ClearSession drops the in-memory session and its stored mirror.
func (s *AuthStore) ClearSession() {
	s.token.Set("")
	s.user.Set(nil)
	s.errMsg.Set("")
	unpersist(s.prefs, keyToken)
	unpersist(s.prefs, keyCurrentUser)
}

// UpdateUser merges the patch into the session user and re-mirrors it. A
// logged-out store ignores the call.
func (s *AuthStore) UpdateUser(patch model.UserPatch) {
	u := s.user.Get()
	if u == nil {
		return
	}
	updated := patch.Apply(*u)
	s.user.Set(&updated)
	persist(s.prefs, keyCurrentUser, updated)
}

// SetUser replaces the session user wholesale, e.g. after a profile refresh.
func (s *AuthStore) SetUser(u model.User) {
	s.user.Set(&u)
	persist(s.prefs, keyCurrentUser, u)
}

// SetUserPoints overwrites the canonical point balance.
func (s *AuthStore) SetUserPoints(points int) {
	s.UpdateUser(model.UserPatch{RewardPoints: &points})
}

// AddUserPoints adjusts the balance by a signed delta.
func (s *AuthStore) AddUserPoints(delta int) {
	u := s.user.Get()
	if u == nil {
		return
	}
	s.SetUserPoints(u.RewardPoints + delta)
}

func (s *AuthStore) SetError(msg string) { s.errMsg.Set(msg) }
