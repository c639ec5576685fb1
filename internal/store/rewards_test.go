package store

import (
	"testing"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

func TestRewardsAffordability(t *testing.T) {
	s := NewRewardsStore(storage.NewMemory())
	s.SetRewards([]model.Reward{
		{ID: 1, PointsCost: 50, IsActive: true},
		{ID: 2, PointsCost: 150, IsActive: true},
		{ID: 3, PointsCost: 10, IsActive: false},
	})
	s.SetUserPoints(100)

	got := s.AffordableRewards()
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("AffordableRewards = %+v, want only id 1", got)
	}

	if r, _ := s.RewardByID(1); !s.CanAfford(r) {
		t.Error("CanAfford(50 with 100 points) = false")
	}
	if r, _ := s.RewardByID(2); s.CanAfford(r) {
		t.Error("CanAfford(150 with 100 points) = true")
	}
}

func TestRewardsAddRedemptionDeductsPoints(t *testing.T) {
	s := NewRewardsStore(storage.NewMemory())
	s.SetRewards([]model.Reward{{ID: 1, PointsCost: 60, IsActive: true}})
	s.SetUserPoints(100)

	s.AddRedemption(model.RewardRedemption{
		ID: 10, RewardID: 1, PointsSpent: 60, Status: model.RedemptionPending,
	})

	if got := s.UserPoints(); got != 40 {
		t.Errorf("UserPoints = %d, want 40", got)
	}
	if r, _ := s.RewardByID(1); s.CanAfford(r) {
		t.Error("reward still affordable after redemption spent the balance")
	}
	if got := s.PendingRedemptions(); len(got) != 1 || got[0].ID != 10 {
		t.Errorf("PendingRedemptions = %+v, want the new entry", got)
	}
}

func TestRewardsFilteredViews(t *testing.T) {
	s := NewRewardsStore(storage.NewMemory())
	s.SetRewards([]model.Reward{
		{ID: 1, PointsCost: 10, IsActive: true, Category: "treat"},
		{ID: 2, PointsCost: 500, IsActive: true, Category: "outing"},
		{ID: 3, PointsCost: 10, IsActive: false, Category: "treat"},
	})
	s.SetUserPoints(50)

	s.SetFilter("affordable")
	if got := s.FilteredRewards(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("affordable filter = %+v, want only id 1", got)
	}

	s.SetFilter("treat")
	if got := s.FilteredRewards(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("category filter = %+v, want only id 1 (inactive excluded)", got)
	}

	s.SetFilter("all")
	if got := s.FilteredRewards(); len(got) != 2 {
		t.Errorf("all filter = %d rewards, want 2 active", len(got))
	}
}

func TestRewardsFilterPersists(t *testing.T) {
	kv := storage.NewMemory()

	first := NewRewardsStore(kv)
	first.SetFilter("affordable")

	second := NewRewardsStore(kv)
	if got := second.Filter(); got != "affordable" {
		t.Errorf("Filter = %q, want affordable", got)
	}
}

func TestRewardsClaimGoal(t *testing.T) {
	s := NewRewardsStore(storage.NewMemory())
	s.SetGoals([]model.Goal{
		{ID: 1, TargetPoints: 100, CurrentPoints: 100, IsActive: true},
		{ID: 2, TargetPoints: 100, CurrentPoints: 40, IsActive: true},
	})

	if !s.ClaimGoal(1) {
		t.Fatal("ClaimGoal(funded) = false")
	}
	goals := s.Goals()
	if goals[0].IsActive {
		t.Error("claimed goal still active")
	}
	if goals[0].CompletedAt == nil {
		t.Error("claimed goal missing completion time")
	}

	// Terminal: a second claim must fail and change nothing.
	done := *goals[0].CompletedAt
	if s.ClaimGoal(1) {
		t.Error("ClaimGoal on claimed goal = true")
	}
	if got := s.Goals()[0]; got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Error("second claim changed completion time")
	}

	if s.ClaimGoal(2) {
		t.Error("ClaimGoal(underfunded) = true")
	}
	if s.ClaimGoal(99) {
		t.Error("ClaimGoal(unknown) = true")
	}

	if got := s.ActiveGoals(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("ActiveGoals = %+v, want only id 2", got)
	}
}

func TestRewardsRedemptionStatusViews(t *testing.T) {
	s := NewRewardsStore(storage.NewMemory())
	s.SetRedemptions([]model.RewardRedemption{
		{ID: 1, Status: model.RedemptionPending},
		{ID: 2, Status: model.RedemptionApproved},
		{ID: 3, Status: model.RedemptionPending},
	})

	if got := s.PendingRedemptions(); len(got) != 2 {
		t.Errorf("len(PendingRedemptions) = %d, want 2", len(got))
	}
	if got := s.ApprovedRedemptions(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("ApprovedRedemptions = %+v, want only id 2", got)
	}

	status := model.RedemptionApproved
	s.UpdateRedemption(1, model.RedemptionPatch{Status: &status})
	if got := s.ApprovedRedemptions(); len(got) != 2 {
		t.Errorf("len(ApprovedRedemptions) after approve = %d, want 2", len(got))
	}
}

func TestRewardsReset(t *testing.T) {
	s := NewRewardsStore(storage.NewMemory())
	s.SetRewards([]model.Reward{{ID: 1, IsActive: true}})
	s.SetUserPoints(70)
	s.SetFilter("treat")

	s.Reset()

	if len(s.Rewards()) != 0 || s.UserPoints() != 0 {
		t.Error("reward state not cleared")
	}
	if s.Filter() != "all" {
		t.Errorf("Filter = %q, want all", s.Filter())
	}
}
