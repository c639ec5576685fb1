package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (c *Client) ListRewards(ctx context.Context) ([]model.Reward, error) {
	var out []model.Reward
	if err := c.get(ctx, "/api/rewards", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReward(ctx context.Context, r model.Reward) (model.Reward, error) {
	var out model.Reward
	if err := c.post(ctx, "/api/rewards", r, &out); err != nil {
		return model.Reward{}, err
	}
	return out, nil
}

func (c *Client) UpdateReward(ctx context.Context, id int64, patch model.RewardPatch) (model.Reward, error) {
	var out model.Reward
	if err := c.put(ctx, fmt.Sprintf("/api/rewards/%d", id), patch, &out); err != nil {
		return model.Reward{}, err
	}
	return out, nil
}

func (c *Client) DeleteReward(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/rewards/%d", id))
}

// RedeemReward spends points on a reward for userID. The server validates
// the balance and returns the created redemption.
func (c *Client) RedeemReward(ctx context.Context, id, userID int64) (model.RewardRedemption, error) {
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	var out model.RewardRedemption
	path := fmt.Sprintf("/api/rewards/%d/redeem", id)
	if err := c.do(ctx, http.MethodPost, path, q, nil, &out); err != nil {
		return model.RewardRedemption{}, err
	}
	return out, nil
}

func (c *Client) ListRedemptions(ctx context.Context) ([]model.RewardRedemption, error) {
	var out []model.RewardRedemption
	if err := c.get(ctx, "/api/rewards/redemptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateRedemption(ctx context.Context, id int64, patch model.RedemptionPatch) (model.RewardRedemption, error) {
	var out model.RewardRedemption
	if err := c.put(ctx, fmt.Sprintf("/api/rewards/redemptions/%d", id), patch, &out); err != nil {
		return model.RewardRedemption{}, err
	}
	return out, nil
}

func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	var out []model.Goal
	if err := c.get(ctx, "/api/rewards/goals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	var out model.Goal
	if err := c.post(ctx, "/api/rewards/goals", g, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id int64, patch model.GoalPatch) (model.Goal, error) {
	var out model.Goal
	if err := c.put(ctx, fmt.Sprintf("/api/rewards/goals/%d", id), patch, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/rewards/goals/%d", id))
}

// ClaimGoal converts a funded goal into its reward.
func (c *Client) ClaimGoal(ctx context.Context, id int64) (model.Goal, error) {
	var out model.Goal
	if err := c.post(ctx, fmt.Sprintf("/api/rewards/goals/%d/claim", id), nil, &out); err != nil {
		return model.Goal{}, err
	}
	return out, nil
}
