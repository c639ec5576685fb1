package store

import (
	"sort"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

// Task sort keys.
const (
	TaskSortDueDate  = "dueDate"
	TaskSortPriority = "priority"
	TaskSortCreated  = "created"
)

type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	InProgress     int
	CompletionRate float64
}

// TasksStore holds the task collection and its derived views. The filter
// preference survives restarts via durable storage.
type TasksStore struct {
	tasks   *signal.Signal[[]model.Task]
	loading *signal.Signal[bool]
	errMsg  *signal.Signal[string]
	filter  *signal.Signal[string]
	sortBy  *signal.Signal[string]

	filtered   *signal.Computed[[]model.Task]
	completed  *signal.Computed[[]model.Task]
	pending    *signal.Computed[[]model.Task]
	inProgress *signal.Computed[[]model.Task]
	stats      *signal.Computed[TaskStats]
	sorted     *signal.Computed[[]model.Task]
}

func NewTasksStore(prefs storage.KV) *TasksStore {
	s := &TasksStore{
		tasks:   signal.New([]model.Task(nil)),
		loading: signal.New(false),
		errMsg:  signal.New(""),
		filter:  signal.New(restore(prefs, keyTasksFilter, "all")),
		sortBy:  signal.New(TaskSortDueDate),
	}

	s.filtered = signal.Derive(func() []model.Task {
		tasks := s.tasks.Get()
		filter := s.filter.Get()
		if filter == "all" {
			return append([]model.Task(nil), tasks...)
		}
		var out []model.Task
		for _, t := range tasks {
			if t.Status == filter {
				out = append(out, t)
			}
		}
		return out
	}, s.tasks, s.filter)

	s.completed = s.byStatus(model.TaskStatusCompleted)
	s.pending = s.byStatus(model.TaskStatusPending)
	s.inProgress = s.byStatus(model.TaskStatusInProgress)

	s.stats = signal.Derive(func() TaskStats {
		total := len(s.tasks.Get())
		done := len(s.completed.Get())
		st := TaskStats{
			Total:      total,
			Completed:  done,
			Pending:    len(s.pending.Get()),
			InProgress: len(s.inProgress.Get()),
		}
		if total > 0 {
			st.CompletionRate = float64(done) / float64(total) * 100
		}
		return st
	}, s.tasks, s.completed, s.pending, s.inProgress)

	s.sorted = signal.Derive(func() []model.Task {
		tasks := append([]model.Task(nil), s.filtered.Get()...)
		switch s.sortBy.Get() {
		case TaskSortDueDate:
			// Undated tasks sort after dated ones.
			sort.SliceStable(tasks, func(i, j int) bool {
				a, b := tasks[i].DueDate, tasks[j].DueDate
				if a == nil {
					return false
				}
				if b == nil {
					return true
				}
				return a.Before(*b)
			})
		case TaskSortPriority:
			sort.SliceStable(tasks, func(i, j int) bool {
				return priorityRank(tasks[i].Priority) < priorityRank(tasks[j].Priority)
			})
		case TaskSortCreated:
			sort.SliceStable(tasks, func(i, j int) bool {
				a, b := tasks[i].CreatedAt, tasks[j].CreatedAt
				if a == nil || b == nil {
					return false
				}
				return b.Before(*a)
			})
		}
		return tasks
	}, s.filtered, s.sortBy)

	signal.Watch(func() {
		persist(prefs, keyTasksFilter, s.filter.Get())
	}, s.filter)

	return s
}

func (s *TasksStore) byStatus(status string) *signal.Computed[[]model.Task] {
	return signal.Derive(func() []model.Task {
		var out []model.Task
		for _, t := range s.tasks.Get() {
			if t.Status == status {
				out = append(out, t)
			}
		}
		return out
	}, s.tasks)
}

func priorityRank(p string) int {
	switch p {
	case model.PriorityHigh:
		return 0
	case model.PriorityMedium:
		return 1
	case model.PriorityLow:
		return 2
	default:
		return 3
	}
}

// --- Reads ---

func (s *TasksStore) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks.Get()...)
}

func (s *TasksStore) Loading() bool { return s.loading.Get() }
func (s *TasksStore) Err() string { return s.errMsg.Get() }
func (s *TasksStore) Filter() string { return s.filter.Get() }
func (s *TasksStore) SortBy() string { return s.sortBy.Get() }

func (s *TasksStore) FilteredTasks() []model.Task { return s.filtered.Get() }
func (s *TasksStore) CompletedTasks() []model.Task { return s.completed.Get() }
func (s *TasksStore) PendingTasks() []model.Task { return s.pending.Get() }
func (s *TasksStore) InProgressTasks() []model.Task { return s.inProgress.Get() }
func (s *TasksStore) SortedTasks() []model.Task { return s.sorted.Get() }
func (s *TasksStore) Stats() TaskStats { return s.stats.Get() }

// TaskByID returns the first task with the given id, or false.
func (s *TasksStore) TaskByID(id int64) (model.Task, bool) {
	for _, t := range s.tasks.Get() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// --- Mutations ---

// SetAll replaces the whole collection, e.g. after an initial load.
func (s *TasksStore) SetAll(tasks []model.Task) {
	s.tasks.Set(append([]model.Task(nil), tasks...))
}

// Add appends a task that already carries its server-assigned id.
func (s *TasksStore) Add(t model.Task) {
	s.tasks.Update(func(tasks []model.Task) []model.Task {
		return append(append([]model.Task(nil), tasks...), t)
	})
}

// Update merges the patch into the first task with a matching id, replacing
// it in place in the collection. Unknown ids are a no-op.
func (s *TasksStore) Update(id int64, patch model.TaskPatch) {
	s.tasks.Update(func(tasks []model.Task) []model.Task {
		for i, t := range tasks {
			if t.ID == id {
				out := append([]model.Task(nil), tasks...)
				out[i] = patch.Apply(t)
				return out
			}
		}
		return tasks
	})
}

// Remove deletes the first task with a matching id. Unknown ids are a no-op.
func (s *TasksStore) Remove(id int64) {
	s.tasks.Update(func(tasks []model.Task) []model.Task {
		for i, t := range tasks {
			if t.ID == id {
				return append(append([]model.Task(nil), tasks[:i]...), tasks[i+1:]...)
			}
		}
		return tasks
	})
}

func (s *TasksStore) SetFilter(filter string) { s.filter.Set(filter) }
func (s *TasksStore) SetSortBy(key string) { s.sortBy.Set(key) }
func (s *TasksStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *TasksStore) SetError(msg string) { s.errMsg.Set(msg) }

// Reset clears the collection and scalar state; the sort preference is kept.
func (s *TasksStore) Reset() {
	s.tasks.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
	s.filter.Set("all")
}
