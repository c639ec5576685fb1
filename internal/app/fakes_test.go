package app

import (
	"context"
	"errors"

	"github.com/Coenni/above-sky-calendar/internal/api"
	"github.com/Coenni/above-sky-calendar/internal/model"
)

var errNotWired = errors.New("not wired in this test")

type fakeTasksAPI struct {
	list     func() ([]model.Task, error)
	create   func(t model.Task) (model.Task, error)
	update   func(id int64, patch model.TaskPatch) (model.Task, error)
	del      func(id int64) error
	complete func(id, userID int64) (model.Task, error)
}

func (f *fakeTasksAPI) ListTasks(context.Context) ([]model.Task, error) {
	if f.list == nil {
		return nil, errNotWired
	}
	return f.list()
}

func (f *fakeTasksAPI) CreateTask(_ context.Context, t model.Task) (model.Task, error) {
	if f.create == nil {
		return model.Task{}, errNotWired
	}
	return f.create(t)
}

func (f *fakeTasksAPI) UpdateTask(_ context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	if f.update == nil {
		return model.Task{}, errNotWired
	}
	return f.update(id, patch)
}

func (f *fakeTasksAPI) DeleteTask(_ context.Context, id int64) error {
	if f.del == nil {
		return errNotWired
	}
	return f.del(id)
}

func (f *fakeTasksAPI) CompleteTask(_ context.Context, id, userID int64) (model.Task, error) {
	if f.complete == nil {
		return model.Task{}, errNotWired
	}
	return f.complete(id, userID)
}

type fakeRewardsAPI struct {
	redeem func(id, userID int64) (model.RewardRedemption, error)
	claim  func(id int64) (model.Goal, error)
}

func (f *fakeRewardsAPI) ListRewards(context.Context) ([]model.Reward, error) {
	return nil, errNotWired
}

func (f *fakeRewardsAPI) CreateReward(_ context.Context, r model.Reward) (model.Reward, error) {
	return model.Reward{}, errNotWired
}

func (f *fakeRewardsAPI) UpdateReward(_ context.Context, id int64, patch model.RewardPatch) (model.Reward, error) {
	return model.Reward{}, errNotWired
}

func (f *fakeRewardsAPI) DeleteReward(_ context.Context, id int64) error { return errNotWired }

func (f *fakeRewardsAPI) RedeemReward(_ context.Context, id, userID int64) (model.RewardRedemption, error) {
	if f.redeem == nil {
		return model.RewardRedemption{}, errNotWired
	}
	return f.redeem(id, userID)
}

func (f *fakeRewardsAPI) ListRedemptions(context.Context) ([]model.RewardRedemption, error) {
	return nil, errNotWired
}

func (f *fakeRewardsAPI) UpdateRedemption(_ context.Context, id int64, patch model.RedemptionPatch) (model.RewardRedemption, error) {
	return model.RewardRedemption{}, errNotWired
}

func (f *fakeRewardsAPI) ListGoals(context.Context) ([]model.Goal, error) { return nil, errNotWired }

func (f *fakeRewardsAPI) CreateGoal(_ context.Context, g model.Goal) (model.Goal, error) {
	return model.Goal{}, errNotWired
}

func (f *fakeRewardsAPI) UpdateGoal(_ context.Context, id int64, patch model.GoalPatch) (model.Goal, error) {
	return model.Goal{}, errNotWired
}

func (f *fakeRewardsAPI) DeleteGoal(_ context.Context, id int64) error { return errNotWired }

func (f *fakeRewardsAPI) ClaimGoal(_ context.Context, id int64) (model.Goal, error) {
	if f.claim == nil {
		return model.Goal{}, errNotWired
	}
	return f.claim(id)
}

type fakeListsAPI struct {
	deleteList func(id int64) error
	createItem func(it model.ListItem) (model.ListItem, error)
	updateItem func(id int64, patch model.ItemPatch) (model.ListItem, error)
}

func (f *fakeListsAPI) ListLists(context.Context) ([]model.FamilyList, error) {
	return nil, errNotWired
}

func (f *fakeListsAPI) CreateList(_ context.Context, l model.FamilyList) (model.FamilyList, error) {
	return model.FamilyList{}, errNotWired
}

func (f *fakeListsAPI) UpdateList(_ context.Context, id int64, patch model.ListPatch) (model.FamilyList, error) {
	return model.FamilyList{}, errNotWired
}

func (f *fakeListsAPI) DeleteList(_ context.Context, id int64) error {
	if f.deleteList == nil {
		return errNotWired
	}
	return f.deleteList(id)
}

func (f *fakeListsAPI) ArchiveList(_ context.Context, id int64) (model.FamilyList, error) {
	return model.FamilyList{}, errNotWired
}

func (f *fakeListsAPI) UnarchiveList(_ context.Context, id int64) (model.FamilyList, error) {
	return model.FamilyList{}, errNotWired
}

func (f *fakeListsAPI) ListItems(_ context.Context, listID int64) ([]model.ListItem, error) {
	return nil, errNotWired
}

func (f *fakeListsAPI) CreateItem(_ context.Context, it model.ListItem) (model.ListItem, error) {
	if f.createItem == nil {
		return model.ListItem{}, errNotWired
	}
	return f.createItem(it)
}

func (f *fakeListsAPI) UpdateItem(_ context.Context, id int64, patch model.ItemPatch) (model.ListItem, error) {
	if f.updateItem == nil {
		return model.ListItem{}, errNotWired
	}
	return f.updateItem(id, patch)
}

func (f *fakeListsAPI) DeleteItem(_ context.Context, id int64) error { return errNotWired }

type fakeAuthAPI struct {
	login   func(username, password string) (api.AuthResponse, error)
	current func(id int64) (model.User, error)
}

func (f *fakeAuthAPI) Login(_ context.Context, username, password string) (api.AuthResponse, error) {
	if f.login == nil {
		return api.AuthResponse{}, errNotWired
	}
	return f.login(username, password)
}

func (f *fakeAuthAPI) Register(_ context.Context, username, email, password string) (api.AuthResponse, error) {
	return api.AuthResponse{}, errNotWired
}

func (f *fakeAuthAPI) GetCurrentUser(_ context.Context, id int64) (model.User, error) {
	if f.current == nil {
		return model.User{}, errNotWired
	}
	return f.current(id)
}
