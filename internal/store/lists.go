package store

import (
	"sort"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

type ListStats struct {
	TotalLists      int
	ActiveLists     int
	ArchivedLists   int
	TotalItems      int
	ActiveListItems int
	CheckedItems    int
	Progress        float64
}

// ListsStore owns two related collections: the lists and their items, joined
// by item.ListID. Removing a list cascades to its items; archiving is a soft
// delete.
type ListsStore struct {
	now func() time.Time

	lists        *signal.Signal[[]model.FamilyList]
	items        *signal.Signal[[]model.ListItem]
	activeListID *signal.Signal[*int64]
	loading      *signal.Signal[bool]
	errMsg       *signal.Signal[string]
	typeFilter   *signal.Signal[string]
	showArchived *signal.Signal[bool]

	active      *signal.Computed[[]model.FamilyList]
	archived    *signal.Computed[[]model.FamilyList]
	filtered    *signal.Computed[[]model.FamilyList]
	activeItems *signal.Computed[[]model.ListItem]
	checked     *signal.Computed[[]model.ListItem]
	unchecked   *signal.Computed[[]model.ListItem]
	progress    *signal.Computed[float64]
	stats       *signal.Computed[ListStats]
}

func NewListsStore(prefs storage.KV) *ListsStore {
	s := &ListsStore{
		now:          time.Now,
		lists:        signal.New([]model.FamilyList(nil)),
		items:        signal.New([]model.ListItem(nil)),
		activeListID: signal.New((*int64)(nil)),
		loading:      signal.New(false),
		errMsg:       signal.New(""),
		typeFilter:   signal.New(restore(prefs, keyListsTypeFilter, "all")),
		showArchived: signal.New(restore(prefs, keyListsArchived, false)),
	}

	s.active = signal.Derive(func() []model.FamilyList {
		var out []model.FamilyList
		for _, l := range s.lists.Get() {
			if !l.IsArchived {
				out = append(out, l)
			}
		}
		return out
	}, s.lists)

	s.archived = signal.Derive(func() []model.FamilyList {
		var out []model.FamilyList
		for _, l := range s.lists.Get() {
			if l.IsArchived {
				out = append(out, l)
			}
		}
		return out
	}, s.lists)

	s.filtered = signal.Derive(func() []model.FamilyList {
		var lists []model.FamilyList
		if s.showArchived.Get() {
			lists = append(lists, s.lists.Get()...)
		} else {
			lists = s.active.Get()
		}
		filter := s.typeFilter.Get()
		if filter == "all" {
			return lists
		}
		var out []model.FamilyList
		for _, l := range lists {
			if l.Type == filter {
				out = append(out, l)
			}
		}
		return out
	}, s.lists, s.active, s.typeFilter, s.showArchived)

	s.activeItems = signal.Derive(func() []model.ListItem {
		id := s.activeListID.Get()
		if id == nil {
			return nil
		}
		out := itemsForList(s.items.Get(), *id)
		return out
	}, s.items, s.activeListID)

	s.checked = signal.Derive(func() []model.ListItem {
		var out []model.ListItem
		for _, it := range s.activeItems.Get() {
			if it.IsChecked {
				out = append(out, it)
			}
		}
		return out
	}, s.activeItems)

	s.unchecked = signal.Derive(func() []model.ListItem {
		var out []model.ListItem
		for _, it := range s.activeItems.Get() {
			if !it.IsChecked {
				out = append(out, it)
			}
		}
		return out
	}, s.activeItems)

	s.progress = signal.Derive(func() float64 {
		total := len(s.activeItems.Get())
		if total == 0 {
			return 0
		}
		return float64(len(s.checked.Get())) / float64(total) * 100
	}, s.activeItems, s.checked)

	s.stats = signal.Derive(func() ListStats {
		return ListStats{
			TotalLists:      len(s.lists.Get()),
			ActiveLists:     len(s.active.Get()),
			ArchivedLists:   len(s.archived.Get()),
			TotalItems:      len(s.items.Get()),
			ActiveListItems: len(s.activeItems.Get()),
			CheckedItems:    len(s.checked.Get()),
			Progress:        s.progress.Get(),
		}
	}, s.lists, s.items, s.active, s.archived, s.activeItems, s.checked, s.progress)

	signal.Watch(func() {
		persist(prefs, keyListsTypeFilter, s.typeFilter.Get())
	}, s.typeFilter)
	signal.Watch(func() {
		persist(prefs, keyListsArchived, s.showArchived.Get())
	}, s.showArchived)

	return s
}

func itemsForList(items []model.ListItem, listID int64) []model.ListItem {
	var out []model.ListItem
	for _, it := range items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// --- Reads ---

func (s *ListsStore) Lists() []model.FamilyList {
	return append([]model.FamilyList(nil), s.lists.Get()...)
}

func (s *ListsStore) Items() []model.ListItem {
	return append([]model.ListItem(nil), s.items.Get()...)
}

func (s *ListsStore) ActiveListID() *int64 { return s.activeListID.Get() }
func (s *ListsStore) Loading() bool { return s.loading.Get() }
func (s *ListsStore) Err() string { return s.errMsg.Get() }
func (s *ListsStore) TypeFilter() string { return s.typeFilter.Get() }
func (s *ListsStore) ShowArchived() bool { return s.showArchived.Get() }

func (s *ListsStore) ActiveLists() []model.FamilyList { return s.active.Get() }
func (s *ListsStore) ArchivedLists() []model.FamilyList { return s.archived.Get() }
func (s *ListsStore) FilteredLists() []model.FamilyList { return s.filtered.Get() }
func (s *ListsStore) ActiveListItems() []model.ListItem { return s.activeItems.Get() }
func (s *ListsStore) CheckedItems() []model.ListItem { return s.checked.Get() }
func (s *ListsStore) UncheckedItems() []model.ListItem { return s.unchecked.Get() }
func (s *ListsStore) Progress() float64 { return s.progress.Get() }
func (s *ListsStore) Stats() ListStats { return s.stats.Get() }

// ActiveList returns the currently selected list, or false.
func (s *ListsStore) ActiveList() (model.FamilyList, bool) {
	id := s.activeListID.Get()
	if id == nil {
		return model.FamilyList{}, false
	}
	return s.ListByID(*id)
}

// ListByID returns the first list with the given id, or false.
func (s *ListsStore) ListByID(id int64) (model.FamilyList, bool) {
	for _, l := range s.lists.Get() {
		if l.ID == id {
			return l, true
		}
	}
	return model.FamilyList{}, false
}

// ItemsForList returns the items of any list, ordered by orderIndex.
func (s *ListsStore) ItemsForList(listID int64) []model.ListItem {
	return itemsForList(s.items.Get(), listID)
}

// NextOrderIndex is the orderIndex a newly created item should carry: the
// current item count of the list. Indexes are never renumbered on delete.
func (s *ListsStore) NextOrderIndex(listID int64) int {
	return len(itemsForList(s.items.Get(), listID))
}

// --- List mutations ---

func (s *ListsStore) SetLists(lists []model.FamilyList) {
	s.lists.Set(append([]model.FamilyList(nil), lists...))
}

func (s *ListsStore) AddList(l model.FamilyList) {
	s.lists.Update(func(lists []model.FamilyList) []model.FamilyList {
		return append(append([]model.FamilyList(nil), lists...), l)
	})
}

func (s *ListsStore) UpdateList(id int64, patch model.ListPatch) {
	s.lists.Update(func(lists []model.FamilyList) []model.FamilyList {
		for i, l := range lists {
			if l.ID == id {
				out := append([]model.FamilyList(nil), lists...)
				out[i] = patch.Apply(l)
				return out
			}
		}
		return lists
	})
}

// RemoveList deletes the list and cascades to every item that references it,
// so no item is ever left pointing at a nonexistent list.
func (s *ListsStore) RemoveList(id int64) {
	s.lists.Update(func(lists []model.FamilyList) []model.FamilyList {
		for i, l := range lists {
			if l.ID == id {
				return append(append([]model.FamilyList(nil), lists[:i]...), lists[i+1:]...)
			}
		}
		return lists
	})
	s.items.Update(func(items []model.ListItem) []model.ListItem {
		var out []model.ListItem
		for _, it := range items {
			if it.ListID != id {
				out = append(out, it)
			}
		}
		return out
	})
}

// ArchiveList soft-deletes: the record stays, flagged with an archive time.
func (s *ListsStore) ArchiveList(id int64) {
	s.lists.Update(func(lists []model.FamilyList) []model.FamilyList {
		for i, l := range lists {
			if l.ID == id {
				out := append([]model.FamilyList(nil), lists...)
				at := s.now()
				out[i].IsArchived = true
				out[i].ArchivedAt = &at
				return out
			}
		}
		return lists
	})
}

func (s *ListsStore) UnarchiveList(id int64) {
	s.lists.Update(func(lists []model.FamilyList) []model.FamilyList {
		for i, l := range lists {
			if l.ID == id {
				out := append([]model.FamilyList(nil), lists...)
				out[i].IsArchived = false
				out[i].ArchivedAt = nil
				return out
			}
		}
		return lists
	})
}

// --- Item mutations ---

func (s *ListsStore) SetItems(items []model.ListItem) {
	s.items.Set(append([]model.ListItem(nil), items...))
}

func (s *ListsStore) AddItem(it model.ListItem) {
	s.items.Update(func(items []model.ListItem) []model.ListItem {
		return append(append([]model.ListItem(nil), items...), it)
	})
}

func (s *ListsStore) UpdateItem(id int64, patch model.ItemPatch) {
	s.items.Update(func(items []model.ListItem) []model.ListItem {
		for i, it := range items {
			if it.ID == id {
				out := append([]model.ListItem(nil), items...)
				out[i] = patch.Apply(it)
				return out
			}
		}
		return items
	})
}

func (s *ListsStore) RemoveItem(id int64) {
	s.items.Update(func(items []model.ListItem) []model.ListItem {
		for i, it := range items {
			if it.ID == id {
				return append(append([]model.ListItem(nil), items[:i]...), items[i+1:]...)
			}
		}
		return items
	})
}

func (s *ListsStore) ToggleItemChecked(id int64) {
	s.items.Update(func(items []model.ListItem) []model.ListItem {
		for i, it := range items {
			if it.ID == id {
				out := append([]model.ListItem(nil), items...)
				out[i].IsChecked = !it.IsChecked
				return out
			}
		}
		return items
	})
}

// --- Scalar mutations ---

func (s *ListsStore) SetActiveListID(id *int64) { s.activeListID.Set(id) }
func (s *ListsStore) SetTypeFilter(filter string) { s.typeFilter.Set(filter) }
func (s *ListsStore) SetShowArchived(show bool) { s.showArchived.Set(show) }
func (s *ListsStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *ListsStore) SetError(msg string) { s.errMsg.Set(msg) }

func (s *ListsStore) Reset() {
	s.lists.Set(nil)
	s.items.Set(nil)
	s.activeListID.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
	s.typeFilter.Set("all")
	s.showArchived.Set(false)
}
