package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

// LoadRewards fetches the catalog, redemption history, and goals together
// and seeds the point mirror from the session user.
func (a *App) LoadRewards(ctx context.Context) error {
	a.Rewards.SetLoading(true)
	defer a.Rewards.SetLoading(false)

	rewards, err := a.api.Rewards.ListRewards(ctx)
	if err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("load rewards: %w", err)
	}
	redemptions, err := a.api.Rewards.ListRedemptions(ctx)
	if err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("load redemptions: %w", err)
	}
	goals, err := a.api.Rewards.ListGoals(ctx)
	if err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("load goals: %w", err)
	}

	a.Rewards.SetError("")
	a.Rewards.SetRewards(rewards)
	a.Rewards.SetRedemptions(redemptions)
	a.Rewards.SetGoals(goals)
	a.Rewards.SetUserPoints(a.Auth.Points())
	return nil
}

func (a *App) CreateReward(ctx context.Context, r model.Reward) (model.Reward, error) {
	created, err := a.api.Rewards.CreateReward(ctx, r)
	if err != nil {
		a.Rewards.SetError(err.Error())
		return model.Reward{}, fmt.Errorf("create reward: %w", err)
	}
	a.Rewards.AddReward(created)
	return created, nil
}

func (a *App) UpdateReward(ctx context.Context, id int64, patch model.RewardPatch) error {
	if _, err := a.api.Rewards.UpdateReward(ctx, id, patch); err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("update reward %d: %w", id, err)
	}
	a.Rewards.UpdateReward(id, patch)
	return nil
}

func (a *App) DeleteReward(ctx context.Context, id int64) error {
	if err := a.api.Rewards.DeleteReward(ctx, id); err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("delete reward %d: %w", id, err)
	}
	a.Rewards.RemoveReward(id)
	return nil
}

// RedeemReward spends points on a reward. Affordability is checked locally
// before the round trip; the server remains the final authority and its
// refusal surfaces as an error. On success the redemption is recorded, the
// local balance drops, and the session balance is reconciled.
func (a *App) RedeemReward(ctx context.Context, id int64) error {
	user, ok := a.Auth.User()
	if !ok {
		return fmt.Errorf("redeem reward %d: not logged in", id)
	}
	reward, ok := a.Rewards.RewardByID(id)
	if !ok {
		return fmt.Errorf("redeem reward %d: unknown reward", id)
	}
	if !a.Rewards.CanAfford(reward) {
		a.Rewards.SetError("not enough points")
		return fmt.Errorf("redeem reward %d: not enough points", id)
	}

	redemption, err := a.api.Rewards.RedeemReward(ctx, id, user.ID)
	if err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("redeem reward %d: %w", id, err)
	}

	a.Rewards.AddRedemption(redemption)
	a.Auth.AddUserPoints(-redemption.PointsSpent)
	a.log.Info("reward redeemed", "reward", id, "spent", redemption.PointsSpent)
	return nil
}

func (a *App) UpdateRedemption(ctx context.Context, id int64, patch model.RedemptionPatch) error {
	if _, err := a.api.Rewards.UpdateRedemption(ctx, id, patch); err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("update redemption %d: %w", id, err)
	}
	a.Rewards.UpdateRedemption(id, patch)
	return nil
}

func (a *App) CreateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	created, err := a.api.Rewards.CreateGoal(ctx, g)
	if err != nil {
		a.Rewards.SetError(err.Error())
		return model.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	a.Rewards.AddGoal(created)
	return created, nil
}

func (a *App) UpdateGoal(ctx context.Context, id int64, patch model.GoalPatch) error {
	if _, err := a.api.Rewards.UpdateGoal(ctx, id, patch); err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("update goal %d: %w", id, err)
	}
	a.Rewards.UpdateGoal(id, patch)
	return nil
}

func (a *App) DeleteGoal(ctx context.Context, id int64) error {
	if err := a.api.Rewards.DeleteGoal(ctx, id); err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	a.Rewards.RemoveGoal(id)
	return nil
}

// ClaimGoal converts a funded goal into its reward. The local claimability
// check runs first so an unfunded goal never produces a round trip.
func (a *App) ClaimGoal(ctx context.Context, id int64) error {
	goal, ok := a.goalByID(id)
	if !ok {
		return fmt.Errorf("claim goal %d: unknown goal", id)
	}
	if !a.Rewards.CanClaimGoal(goal) {
		a.Rewards.SetError("goal not claimable")
		return fmt.Errorf("claim goal %d: not claimable", id)
	}

	if _, err := a.api.Rewards.ClaimGoal(ctx, id); err != nil {
		a.Rewards.SetError(err.Error())
		return fmt.Errorf("claim goal %d: %w", id, err)
	}
	a.Rewards.ClaimGoal(id)
	a.log.Info("goal claimed", "goal", id)
	return nil
}

func (a *App) goalByID(id int64) (model.Goal, bool) {
	for _, g := range a.Rewards.Goals() {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}
