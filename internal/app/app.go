// Package app sequences the network round trips and store mutations behind
// each user-facing operation. Stores never call the server and the api client
// never touches a store; everything that needs both happens here.
package app

import (
	"context"
	"log/slog"

	"github.com/Coenni/above-sky-calendar/internal/api"
	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/storage"
	"github.com/Coenni/above-sky-calendar/internal/store"
)

type TasksAPI interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	CompleteTask(ctx context.Context, id, userID int64) (model.Task, error)
}

type CalendarAPI interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	CreateEvent(ctx context.Context, e model.Event) (model.Event, error)
	UpdateEvent(ctx context.Context, id int64, patch model.EventPatch) (model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type MealsAPI interface {
	ListMeals(ctx context.Context) ([]model.Meal, error)
	CreateMeal(ctx context.Context, m model.Meal) (model.Meal, error)
	UpdateMeal(ctx context.Context, id int64, patch model.MealPatch) (model.Meal, error)
	DeleteMeal(ctx context.Context, id int64) error
	AssignMeal(ctx context.Context, id int64, date, mealType string) (model.Meal, error)
	ToggleMealFavorite(ctx context.Context, id int64) (model.Meal, error)
}

type RewardsAPI interface {
	ListRewards(ctx context.Context) ([]model.Reward, error)
	CreateReward(ctx context.Context, r model.Reward) (model.Reward, error)
	UpdateReward(ctx context.Context, id int64, patch model.RewardPatch) (model.Reward, error)
	DeleteReward(ctx context.Context, id int64) error
	RedeemReward(ctx context.Context, id, userID int64) (model.RewardRedemption, error)
	ListRedemptions(ctx context.Context) ([]model.RewardRedemption, error)
	UpdateRedemption(ctx context.Context, id int64, patch model.RedemptionPatch) (model.RewardRedemption, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	CreateGoal(ctx context.Context, g model.Goal) (model.Goal, error)
	UpdateGoal(ctx context.Context, id int64, patch model.GoalPatch) (model.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
	ClaimGoal(ctx context.Context, id int64) (model.Goal, error)
}

type ListsAPI interface {
	ListLists(ctx context.Context) ([]model.FamilyList, error)
	CreateList(ctx context.Context, l model.FamilyList) (model.FamilyList, error)
	UpdateList(ctx context.Context, id int64, patch model.ListPatch) (model.FamilyList, error)
	DeleteList(ctx context.Context, id int64) error
	ArchiveList(ctx context.Context, id int64) (model.FamilyList, error)
	UnarchiveList(ctx context.Context, id int64) (model.FamilyList, error)
	ListItems(ctx context.Context, listID int64) ([]model.ListItem, error)
	CreateItem(ctx context.Context, it model.ListItem) (model.ListItem, error)
	UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) (model.ListItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

type PhotosAPI interface {
	ListPhotos(ctx context.Context) ([]model.Photo, error)
	CreatePhoto(ctx context.Context, p model.Photo) (model.Photo, error)
	UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) (model.Photo, error)
	DeletePhoto(ctx context.Context, id int64) error
}

type MembersAPI interface {
	ListMembers(ctx context.Context) ([]model.FamilyMember, error)
	CreateMember(ctx context.Context, in model.MemberInput) (model.FamilyMember, error)
	UpdateMember(ctx context.Context, id int64, patch model.MemberPatch) (model.FamilyMember, error)
	DeleteMember(ctx context.Context, id int64) error
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (api.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (api.AuthResponse, error)
	GetCurrentUser(ctx context.Context, id int64) (model.User, error)
}

type ModeAPI interface {
	GetMode(ctx context.Context) (model.Mode, error)
	SetMode(ctx context.Context, mode, pin string) (model.Mode, error)
	SetPin(ctx context.Context, pin string) error
	RequestPinReset(ctx context.Context) error
	ResetPin(ctx context.Context, token, pin string) error
}

type DashboardAPI interface {
	GetMetrics(ctx context.Context) (model.Metrics, error)
	GetUserMetrics(ctx context.Context, userID int64) (model.UserMetrics, error)
}

// Adapters bundles the per-domain server interfaces. *api.Client satisfies
// every one of them.
type Adapters struct {
	Tasks     TasksAPI
	Calendar  CalendarAPI
	Meals     MealsAPI
	Rewards   RewardsAPI
	Lists     ListsAPI
	Photos    PhotosAPI
	Members   MembersAPI
	Auth      AuthAPI
	Mode      ModeAPI
	Dashboard DashboardAPI
}

// FromClient wires every adapter to the one HTTP client.
func FromClient(c *api.Client) Adapters {
	return Adapters{
		Tasks: c, Calendar: c, Meals: c, Rewards: c, Lists: c,
		Photos: c, Members: c, Auth: c, Mode: c, Dashboard: c,
	}
}

// App owns the stores and drives them through the server adapters.
type App struct {
	api Adapters
	log *slog.Logger

	Tasks     *store.TasksStore
	Calendar  *store.CalendarStore
	Meals     *store.MealsStore
	Rewards   *store.RewardsStore
	Lists     *store.ListsStore
	Photos    *store.PhotosStore
	Family    *store.FamilyStore
	Auth      *store.AuthStore
	Mode      *store.ModeStore
	Dashboard *store.DashboardStore
}

func New(adapters Adapters, prefs storage.KV, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		api:       adapters,
		log:       log,
		Tasks:     store.NewTasksStore(prefs),
		Calendar:  store.NewCalendarStore(prefs),
		Meals:     store.NewMealsStore(prefs),
		Rewards:   store.NewRewardsStore(prefs),
		Lists:     store.NewListsStore(prefs),
		Photos:    store.NewPhotosStore(prefs),
		Family:    store.NewFamilyStore(),
		Auth:      store.NewAuthStore(prefs),
		Mode:      store.NewModeStore(prefs),
		Dashboard: store.NewDashboardStore(prefs),
	}
}
