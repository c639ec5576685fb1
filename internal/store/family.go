package store

import (
	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
)

type FamilyStats struct {
	TotalMembers int
	Parents      int
	Children     int
	TotalPoints  int
}

// FamilyStore holds the household roster.
type FamilyStore struct {
	members *signal.Signal[[]model.FamilyMember]
	loading *signal.Signal[bool]
	errMsg  *signal.Signal[string]

	parents  *signal.Computed[[]model.FamilyMember]
	children *signal.Computed[[]model.FamilyMember]
	stats    *signal.Computed[FamilyStats]
}

func NewFamilyStore() *FamilyStore {
	s := &FamilyStore{
		members: signal.New([]model.FamilyMember(nil)),
		loading: signal.New(false),
		errMsg:  signal.New(""),
	}

	s.parents = signal.Derive(func() []model.FamilyMember {
		var out []model.FamilyMember
		for _, m := range s.members.Get() {
			if m.IsParent {
				out = append(out, m)
			}
		}
		return out
	}, s.members)

	s.children = signal.Derive(func() []model.FamilyMember {
		var out []model.FamilyMember
		for _, m := range s.members.Get() {
			if !m.IsParent {
				out = append(out, m)
			}
		}
		return out
	}, s.members)

	s.stats = signal.Derive(func() FamilyStats {
		points := 0
		for _, m := range s.members.Get() {
			points += m.RewardPoints
		}
		return FamilyStats{
			TotalMembers: len(s.members.Get()),
			Parents:      len(s.parents.Get()),
			Children:     len(s.children.Get()),
			TotalPoints:  points,
		}
	}, s.members, s.parents, s.children)

	return s
}

// --- Reads ---

func (s *FamilyStore) Members() []model.FamilyMember {
	return append([]model.FamilyMember(nil), s.members.Get()...)
}

func (s *FamilyStore) Loading() bool { return s.loading.Get() }
func (s *FamilyStore) Err() string { return s.errMsg.Get() }

func (s *FamilyStore) Parents() []model.FamilyMember { return s.parents.Get() }
func (s *FamilyStore) Children() []model.FamilyMember { return s.children.Get() }
func (s *FamilyStore) Stats() FamilyStats { return s.stats.Get() }

// MemberByID returns the first member with the given id, or false.
func (s *FamilyStore) MemberByID(id int64) (model.FamilyMember, bool) {
	for _, m := range s.members.Get() {
		if m.ID == id {
			return m, true
		}
	}
	return model.FamilyMember{}, false
}

// --- Mutations ---

func (s *FamilyStore) SetAll(members []model.FamilyMember) {
	s.members.Set(append([]model.FamilyMember(nil), members...))
}

func (s *FamilyStore) Add(m model.FamilyMember) {
	s.members.Update(func(members []model.FamilyMember) []model.FamilyMember {
		return append(append([]model.FamilyMember(nil), members...), m)
	})
}

func (s *FamilyStore) Update(id int64, patch model.MemberPatch) {
	s.members.Update(func(members []model.FamilyMember) []model.FamilyMember {
		for i, m := range members {
			if m.ID == id {
				out := append([]model.FamilyMember(nil), members...)
				out[i] = patch.Apply(m)
				return out
			}
		}
		return members
	})
}

func (s *FamilyStore) Remove(id int64) {
	s.members.Update(func(members []model.FamilyMember) []model.FamilyMember {
		for i, m := range members {
			if m.ID == id {
				return append(append([]model.FamilyMember(nil), members[:i]...), members[i+1:]...)
			}
		}
		return members
	})
}

func (s *FamilyStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *FamilyStore) SetError(msg string) { s.errMsg.Set(msg) }

func (s *FamilyStore) Reset() {
	s.members.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
}
