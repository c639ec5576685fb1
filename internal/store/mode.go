package store

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

// ModeStore holds the parent/silent switch. The chosen mode is persisted so
// the device stays in silent mode across restarts, and a bcrypt hash of the
// unlock PIN can be cached locally so the switch still verifies offline. The
// server stays authoritative: SetServerState overwrites local assumptions
// whenever fresh state arrives.
type ModeStore struct {
	prefs storage.KV

	mode      *signal.Signal[string]
	hasPinSet *signal.Signal[bool]
	errMsg    *signal.Signal[string]

	isParentMode *signal.Computed[bool]
}

func NewModeStore(prefs storage.KV) *ModeStore {
	s := &ModeStore{
		prefs:     prefs,
		mode:      signal.New(validMode(restore(prefs, keyUserMode, model.ModeParent))),
		hasPinSet: signal.New(false),
		errMsg:    signal.New(""),
	}

	s.isParentMode = signal.Derive(func() bool {
		return s.mode.Get() == model.ModeParent
	}, s.mode)

	signal.Watch(func() {
		persist(prefs, keyUserMode, s.mode.Get())
	}, s.mode)

	return s
}

func validMode(mode string) string {
	switch mode {
	case model.ModeParent, model.ModeSilent:
		return mode
	default:
		return model.ModeParent
	}
}

// --- Reads ---

func (s *ModeStore) Mode() string { return s.mode.Get() }
func (s *ModeStore) IsParentMode() bool { return s.isParentMode.Get() }
func (s *ModeStore) HasPinSet() bool { return s.hasPinSet.Get() }
func (s *ModeStore) Err() string { return s.errMsg.Get() }

// --- Mutations ---

func (s *ModeStore) SetMode(mode string) { s.mode.Set(validMode(mode)) }

// SetServerState applies the mode the server reports.
func (s *ModeStore) SetServerState(m model.Mode) {
	if m.IsParentMode {
		s.mode.Set(model.ModeParent)
	} else {
		s.mode.Set(model.ModeSilent)
	}
	s.hasPinSet.Set(m.HasPinSet)
}

func (s *ModeStore) SetHasPinSet(v bool) { s.hasPinSet.Set(v) }
func (s *ModeStore) SetError(msg string) { s.errMsg.Set(msg) }

// Clear returns the device to parent mode and forgets the cached PIN hash.
func (s *ModeStore) Clear() {
	s.mode.Set(model.ModeParent)
	s.hasPinSet.Set(false)
	s.errMsg.Set("")
	unpersist(s.prefs, keyUserMode)
	s.ClearPinCache()
}

// --- PIN cache ---

// CachePin stores a bcrypt hash of the PIN locally so VerifyCachedPin can
// unlock the mode switch without a round trip. The plaintext PIN is never
// persisted.
func (s *ModeStore) CachePin(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.prefs.Put(keyModePinHash, string(hash))
}

// VerifyCachedPin checks the PIN against the cached hash. It reports false
// when no hash is cached.
func (s *ModeStore) VerifyCachedPin(pin string) bool {
	var hash string
	found, err := s.prefs.Get(keyModePinHash, &hash)
	if err != nil || !found || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// HasCachedPin reports whether an offline hash exists.
func (s *ModeStore) HasCachedPin() bool {
	var hash string
	found, err := s.prefs.Get(keyModePinHash, &hash)
	return err == nil && found && hash != ""
}

func (s *ModeStore) ClearPinCache() {
	unpersist(s.prefs, keyModePinHash)
}
