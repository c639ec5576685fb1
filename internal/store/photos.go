package store

import (
	"sort"
	"strings"
	"time"

	"github.com/Coenni/above-sky-calendar/internal/model"
	"github.com/Coenni/above-sky-calendar/internal/signal"
	"github.com/Coenni/above-sky-calendar/internal/storage"
)

type PhotoStats struct {
	TotalPhotos int
	TaggedCount int
	TotalTags   int
}

// PhotosStore holds the photo gallery, the tag filter, and the transient
// upload progress indicator. Tags are stored on each photo as a
// comma-separated string; the store splits and normalizes them on demand.
type PhotosStore struct {
	photos         *signal.Signal[[]model.Photo]
	loading        *signal.Signal[bool]
	errMsg         *signal.Signal[string]
	tagFilter      *signal.Signal[string]
	selectedID     *signal.Signal[*int64]
	uploadProgress *signal.Signal[int]

	sorted   *signal.Computed[[]model.Photo]
	filtered *signal.Computed[[]model.Photo]
	recent   *signal.Computed[[]model.Photo]
	byEvent  *signal.Computed[map[int64][]model.Photo]
	allTags  *signal.Computed[[]string]
	stats    *signal.Computed[PhotoStats]
}

func NewPhotosStore(prefs storage.KV) *PhotosStore {
	s := &PhotosStore{
		photos:         signal.New([]model.Photo(nil)),
		loading:        signal.New(false),
		errMsg:         signal.New(""),
		tagFilter:      signal.New(restore(prefs, keyPhotosTagFilter, "")),
		selectedID:     signal.New((*int64)(nil)),
		uploadProgress: signal.New(0),
	}

	// Newest first. Photos without a date sort as the zero time, so they
	// land at the end.
	s.sorted = signal.Derive(func() []model.Photo {
		out := append([]model.Photo(nil), s.photos.Get()...)
		sort.SliceStable(out, func(i, j int) bool {
			return photoDate(out[j]).Before(photoDate(out[i]))
		})
		return out
	}, s.photos)

	s.filtered = signal.Derive(func() []model.Photo {
		tag := s.tagFilter.Get()
		if tag == "" {
			return s.sorted.Get()
		}
		var out []model.Photo
		for _, p := range s.sorted.Get() {
			if photoHasTag(p, tag) {
				out = append(out, p)
			}
		}
		return out
	}, s.sorted, s.tagFilter)

	s.recent = signal.Derive(func() []model.Photo {
		out := s.sorted.Get()
		if len(out) > 10 {
			out = out[:10]
		}
		return out
	}, s.sorted)

	s.byEvent = signal.Derive(func() map[int64][]model.Photo {
		byEvent := make(map[int64][]model.Photo)
		for _, p := range s.photos.Get() {
			if p.EventID != nil {
				byEvent[*p.EventID] = append(byEvent[*p.EventID], p)
			}
		}
		return byEvent
	}, s.photos)

	s.allTags = signal.Derive(func() []string {
		seen := make(map[string]struct{})
		for _, p := range s.photos.Get() {
			for _, tag := range splitTags(p.Tags) {
				seen[tag] = struct{}{}
			}
		}
		out := make([]string, 0, len(seen))
		for tag := range seen {
			out = append(out, tag)
		}
		sort.Strings(out)
		return out
	}, s.photos)

	s.stats = signal.Derive(func() PhotoStats {
		tagged := 0
		for _, p := range s.photos.Get() {
			if len(splitTags(p.Tags)) > 0 {
				tagged++
			}
		}
		return PhotoStats{
			TotalPhotos: len(s.photos.Get()),
			TaggedCount: tagged,
			TotalTags:   len(s.allTags.Get()),
		}
	}, s.photos, s.allTags)

	signal.Watch(func() {
		persist(prefs, keyPhotosTagFilter, s.tagFilter.Get())
	}, s.tagFilter)

	return s
}

func photoDate(p model.Photo) time.Time {
	if p.PhotoDate != nil {
		return *p.PhotoDate
	}
	if p.UploadedAt != nil {
		return *p.UploadedAt
	}
	return time.Time{}
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func photoHasTag(p model.Photo, tag string) bool {
	for _, t := range splitTags(p.Tags) {
		if t == tag {
			return true
		}
	}
	return false
}

// --- Reads ---

func (s *PhotosStore) Photos() []model.Photo {
	return append([]model.Photo(nil), s.photos.Get()...)
}

func (s *PhotosStore) Loading() bool { return s.loading.Get() }
func (s *PhotosStore) Err() string { return s.errMsg.Get() }
func (s *PhotosStore) TagFilter() string { return s.tagFilter.Get() }
func (s *PhotosStore) UploadProgress() int { return s.uploadProgress.Get() }

func (s *PhotosStore) SortedPhotos() []model.Photo { return s.sorted.Get() }
func (s *PhotosStore) FilteredPhotos() []model.Photo { return s.filtered.Get() }
func (s *PhotosStore) RecentPhotos() []model.Photo { return s.recent.Get() }
func (s *PhotosStore) PhotosByEvent() map[int64][]model.Photo { return s.byEvent.Get() }
func (s *PhotosStore) AllTags() []string { return s.allTags.Get() }
func (s *PhotosStore) Stats() PhotoStats { return s.stats.Get() }

// SelectedPhoto returns the photo picked for detail view, or false.
func (s *PhotosStore) SelectedPhoto() (model.Photo, bool) {
	id := s.selectedID.Get()
	if id == nil {
		return model.Photo{}, false
	}
	return s.PhotoByID(*id)
}

// PhotoByID returns the first photo with the given id, or false.
func (s *PhotosStore) PhotoByID(id int64) (model.Photo, bool) {
	for _, p := range s.photos.Get() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Photo{}, false
}

// PhotosForEvent returns photos attached to the given event.
func (s *PhotosStore) PhotosForEvent(eventID int64) []model.Photo {
	return s.byEvent.Get()[eventID]
}

// --- Mutations ---

func (s *PhotosStore) SetAll(photos []model.Photo) {
	s.photos.Set(append([]model.Photo(nil), photos...))
}

func (s *PhotosStore) Add(p model.Photo) {
	s.photos.Update(func(photos []model.Photo) []model.Photo {
		return append(append([]model.Photo(nil), photos...), p)
	})
}

func (s *PhotosStore) Update(id int64, patch model.PhotoPatch) {
	s.photos.Update(func(photos []model.Photo) []model.Photo {
		for i, p := range photos {
			if p.ID == id {
				out := append([]model.Photo(nil), photos...)
				out[i] = patch.Apply(p)
				return out
			}
		}
		return photos
	})
}

func (s *PhotosStore) Remove(id int64) {
	s.photos.Update(func(photos []model.Photo) []model.Photo {
		for i, p := range photos {
			if p.ID == id {
				return append(append([]model.Photo(nil), photos[:i]...), photos[i+1:]...)
			}
		}
		return photos
	})
	if sel := s.selectedID.Get(); sel != nil && *sel == id {
		s.selectedID.Set(nil)
	}
}

func (s *PhotosStore) SetTagFilter(tag string) { s.tagFilter.Set(tag) }
func (s *PhotosStore) SetSelectedPhotoID(id *int64) { s.selectedID.Set(id) }
func (s *PhotosStore) SetUploadProgress(percent int) { s.uploadProgress.Set(percent) }
func (s *PhotosStore) SetLoading(v bool) { s.loading.Set(v) }
func (s *PhotosStore) SetError(msg string) { s.errMsg.Set(msg) }

func (s *PhotosStore) Reset() {
	s.photos.Set(nil)
	s.loading.Set(false)
	s.errMsg.Set("")
	s.tagFilter.Set("")
	s.selectedID.Set(nil)
	s.uploadProgress.Set(0)
}
