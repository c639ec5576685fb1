package app

import (
	"context"
	"fmt"

	"github.com/Coenni/above-sky-calendar/internal/model"
)

func (a *App) LoadFamily(ctx context.Context) error {
	a.Family.SetLoading(true)
	defer a.Family.SetLoading(false)

	members, err := a.api.Members.ListMembers(ctx)
	if err != nil {
		a.Family.SetError(err.Error())
		return fmt.Errorf("load family: %w", err)
	}
	a.Family.SetError("")
	a.Family.SetAll(members)
	return nil
}

func (a *App) CreateMember(ctx context.Context, in model.MemberInput) (model.FamilyMember, error) {
	created, err := a.api.Members.CreateMember(ctx, in)
	if err != nil {
		a.Family.SetError(err.Error())
		return model.FamilyMember{}, fmt.Errorf("create member: %w", err)
	}
	a.Family.Add(created)
	return created, nil
}

// UpdateMember patches a member; when it is the session user, the auth
// store's profile follows.
func (a *App) UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) error {
	if _, err := a.api.Members.UpdateMember(ctx, id, patch); err != nil {
		a.Family.SetError(err.Error())
		return fmt.Errorf("update member %d: %w", id, err)
	}
	a.Family.Update(id, patch)

	if u, ok := a.Auth.User(); ok && u.ID == id {
		a.Auth.UpdateUser(model.UserPatch{
			Username:     patch.Username,
			Email:        patch.Email,
			DisplayName:  patch.DisplayName,
			Color:        patch.Color,
			Age:          patch.Age,
			IsParent:     patch.IsParent,
			RewardPoints: patch.RewardPoints,
		})
		if patch.RewardPoints != nil {
			a.Rewards.SetUserPoints(*patch.RewardPoints)
		}
	}
	return nil
}

func (a *App) DeleteMember(ctx context.Context, id int64) error {
	if err := a.api.Members.DeleteMember(ctx, id); err != nil {
		a.Family.SetError(err.Error())
		return fmt.Errorf("delete member %d: %w", id, err)
	}
	a.Family.Remove(id)
	return nil
}
