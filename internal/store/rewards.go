package store

import (
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

type RewardStats struct {
	TotalRewards       int
	AvailableRewards   int
	AffordableRewards  int
	UserPoints         int
	TotalRedemptions   int
	PendingRedemptions int
	ActiveGoals        int
}

// RewardsStore holds the reward catalog, the redemption history, the
// reward-linked savings goals, and a local mirror of the user's point
// balance. The session store remains the canonical balance; this mirror
// exists so affordability checks reflect a pending spend immediately.
type RewardsStore struct {
	now func() time.Time

	rewards     *signal.Signal[[]model.Reward]
	redemptions *signal.Signal[[]model.RewardRedemption]
	goals       *signal.Signal[[]model.Goal]
	userPoints  *signal.Signal[int]
	loading     *signal.Signal[bool]
	errMsg      *signal.Signal[string]
	filter      *signal.Signal[string]

	available  *signal.Computed[[]model.Reward]
	affordable *signal.Computed[[]model.Reward]
	filtered   *signal.Computed[[]model.Reward]
	pending    *signal.Computed[[]model.RewardRedemption]
	approved   *signal.Computed[[]model.RewardRedemption]
	active     *signal.Computed[[]model.Goal]
	stats      *signal.Computed[RewardStats]
}

func NewRewardsStore(prefs storage.KV) *RewardsStore {
	s := &RewardsStore{
		now:         time.Now,
		rewards:     signal.New([]model.Reward(nil)),
		redemptions: signal.New([]model.RewardRedemption(nil)),
		goals:       signal.New([]model.Goal(nil)),
		userPoints:  signal.New(0),
		loading:     signal.New(false),
		errMsg:      signal.New(""),
		filter:      signal.New(restore(prefs, keyRewardsFilter, "all")),
	}

	s.available = signal.Derive(func() []model.Reward {
		var out []model.Reward
		for _, r := range s.rewards.Get() {
			if r.IsActive {
				out = append(out, r)
			}
		}
		return out
	}, s.rewards)

	s.affordable = signal.Derive(func() []model.Reward {
		points := s.userPoints.Get()
		var out []model.Reward
		for _, r := range s.available.Get() {
			if r.PointsCost <= points {
				out = append(out, r)
			}
		}
		return out
	}, s.available, s.userPoints)

	s.filtered = signal.Derive(func() []model.Reward {
		switch filter := s.filter.Get(); filter {
		case "all":
			return s.available.Get()
		case "affordable":
			return s.affordable.Get()
		default:
			var out []model.Reward
			for _, r := range s.available.Get() {
				if r.Category == filter {
					out = append(out, r)
				}
			}
			return out
		}
	}, s.available, s.affordable, s.filter)

	s.pending = s.byStatus(model.RedemptionPending)
	s.approved = s.byStatus(model.RedemptionApproved)

	s.active = signal.Derive(func() []model.Goal {
		var out []model.Goal
		for _, g := range s.goals.Get() {
			if g.IsActive {
				out = append(out, g)
			}
		}
		return out
	}, s.goals)

	s.stats = signal.Derive(func() RewardStats {
		return RewardStats{
			TotalRewards:       len(s.rewards.Get()),
			AvailableRewards:   len(s.available.Get()),
			AffordableRewards:  len(s.affordable.Get()),
			UserPoints:         s.userPoints.Get(),
			TotalRedemptions:   len(s.redemptions.Get()),
			PendingRedemptions: len(s.pending.Get()),
			ActiveGoals:        len(s.active.Get()),
		}
	}, s.rewards, s.available, s.affordable, s.userPoints, s.redemptions, s.pending, s.active)

	signal.Watch(func() {
		persist(prefs, keyRewardsFilter, s.filter.Get())
	}, s.filter)

	return s
}

func (s *RewardsStore) byStatus(status string) *signal.Computed[[]model.RewardRedemption] {
	return signal.Derive(func() []model.RewardRedemption {
		var out []model.RewardRedemption
		for _, r := range s.redemptions.Get() {
			if r.Status == status {
				out = append(out, r)
			}
		}
		return out
	}, s.redemptions)
}

// --- Reads ---

func (s *RewardsStore) Rewards() []model.Reward {
	return append([]model.Reward(nil), s.rewards.Get()...)
}

func (s *RewardsStore) Redemptions() []model.RewardRedemption {
	return append([]model.RewardRedemption(nil), s.redemptions.Get()...)
}

func (s *RewardsStore) Goals() []model.Goal {
	return append([]model.Goal(nil), s.goals.Get()...)
}

func (s *RewardsStore) UserPoints() int { return s.userPoints.Get() }
func (s *RewardsStore) Loading() bool { return s.loading.Get() }
func (s *RewardsStore) Err() string { return s.errMsg.Get() }
func (s *RewardsStore) Filter() string { return s.filter.Get() }

func (s *RewardsStore) AvailableRewards() []model.Reward { return s.available.Get() }
func (s *RewardsStore) AffordableRewards() []model.Reward { return s.affordable.Get() }
func (s *RewardsStore) FilteredRewards() []model.Reward { return s.filtered.Get() }
func (s *RewardsStore) PendingRedemptions() []model.RewardRedemption { return s.pending.Get() }
func (s *RewardsStore) ApprovedRedemptions() []model.RewardRedemption {
	return s.approved.Get()
}
func (s *RewardsStore) ActiveGoals() []model.Goal { return s.active.Get() }
func (s *RewardsStore) Stats() RewardStats { return s.stats.Get() }

// RewardByID returns the first reward with the given id, or false.
func (s *RewardsStore) RewardByID(id int64) (model.Reward, bool) {
	for _, r := range s.rewards.Get() {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reward{}, false
}

// CanAfford is the single authoritative affordability check.
func (s *RewardsStore) CanAfford(r model.Reward) bool {
	return s.userPoints.Get() >= r.PointsCost
}

// CanClaimGoal reports whether the goal is active and funded.
func (s *RewardsStore) CanClaimGoal(g model.Goal) bool {
	return g.IsActive && g.CurrentPoints >= g.TargetPoints
}

// --- Reward mutations ---

func (s *RewardsStore) SetRewards(rewards []model.Reward) {
	s.rewards.Set(append([]model.Reward(nil), rewards...))
}

func (s *RewardsStore) AddReward(r model.Reward) {
	s.rewards.Update(func(rewards []model.Reward) []model.Reward {
		return append(append([]model.Reward(nil), rewards...), r)
	})
}

func (s *RewardsStore) UpdateReward(id int64, patch model.RewardPatch) {
	s.rewards.Update(func(rewards []model.Reward) []model.Reward {
		for i, r := range rewards {
			if r.ID == id {
				out := append([]model.Reward(nil), rewards...)
				out[i] = patch.Apply(r)
				return out
			}
		}
		return rewards
	})
}

func (s *RewardsStore) RemoveReward(id int64) {
	s.rewards.Update(func(rewards []model.Reward) []model.Reward {
		for i, r := range rewards {
			if r.ID == id {
				return append(append([]model.Reward(nil), rewards[:i]...), rewards[i+1:]...)
			}
		}
		return rewards
	})
}

// --- Redemption mutations ---

func (s *RewardsStore) SetRedemptions(redemptions []model.RewardRedemption) {
	s.redemptions.Set(append([]model.RewardRedemption(nil), redemptions...))
}

// AddRedemption appends the redemption and deducts its cost from the local
// balance in the same operation, so affordability immediately reflects the
// pending spend. The session store's canonical balance is synced separately
// by the caller.
func (s *RewardsStore) AddRedemption(r model.RewardRedemption) {
	s.redemptions.Update(func(redemptions []model.RewardRedemption) []model.RewardRedemption {
		return append(append([]model.RewardRedemption(nil), redemptions...), r)
	})
	s.userPoints.Update(func(points int) int { return points - r.PointsSpent })
}

func (s *RewardsStore) UpdateRedemption(id int64, patch model.RedemptionPatch) {
	s.redemptions.Update(func(redemptions []model.RewardRedemption) []model.RewardRedemption {
		for i, r := range redemptions {
			if r.ID == id {
				out := append([]model.RewardRedemption(nil), redemptions...)
				out[i] = patch.Apply(r)
				return out
			}
		}
		return redemptions
	})
}

// --- Goal mutations ---

func (s *RewardsStore) SetGoals(goals []model.Goal) {
	s.goals.Set(append([]model.Goal(nil), goals...))
}

func (s *RewardsStore) AddGoal(g model.Goal) {
	s.goals.Update(func(goals []model.Goal) []model.Goal {
		return append(append([]model.Goal(nil), goals...), g)
	})
}

func (s *RewardsStore) UpdateGoal(id int64, patch model.GoalPatch) {
	s.goals.Update(func(goals []model.Goal) []model.Goal {
		for i, g := range goals {
			if g.ID == id {
				out := append([]model.Goal(nil), goals...)
				out[i] = patch.Apply(g)
				return out
			}
		}
		return goals
	})
}

func (s *RewardsStore) RemoveGoal(id int64) {
	s.goals.Update(func(goals []model.Goal) []model.Goal {
		for i, g := range goals {
			if g.ID == id {
				return append(append([]model.Goal(nil), goals[:i]...), goals[i+1:]...)
			}
		}
		return goals
	})
}

// ClaimGoal deactivates a funded goal and stamps its completion time.
// Claimed goals are terminal. Returns false when the goal is unknown or not
// claimable.
func (s *RewardsStore) ClaimGoal(id int64) bool {
	claimed := false
	s.goals.Update(func(goals []model.Goal) []model.Goal {
		for i, g := range goals {
			if g.ID == id {
				if !s.CanClaimGoal(g) {
					return goals
				}
				out := append([]model.Goal(nil), goals...)
				done := s.now()
				out[i].IsActive = false
				out[i].CompletedAt = &done
				claimed = true
				return out
			}
		}
		return goals
	})
	return claimed
}

// --- Scalar mutations ---

func (s *RewardsStore) SetUserPoints(points int) { s.userPoints.Set(points) }

func (s *RewardsStore) AddPoints(points int) {
	s.userPoints.Update(func(current int) int { return current + points })
}

func (s *RewardsStore) SetFilter(filter string) { s.filter.Set(filter) }
func (s *RewardsStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *RewardsStore) SetError(msg string) { s.errMsg.Set(msg) }

func (s *RewardsStore) Reset() {
	s.rewards.Set(nil)
	s.redemptions.Set(nil)
	s.goals.Set(nil)
	s.userPoints.Set(0)
	s.loading.Set(false)
	s.errMsg.Set("")
	s.filter.Set("all")
}
