package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/web-project/backend/internal/models"
)

// Store owns the whole dataset: one in-memory map per entity plus the ID
// counters, persisted together as a single JSON document. It is constructed
// once in main and injected into every repository.
//
// Integer map keys serialize as string object keys, so IDs stay canonical
// integers in memory and become strings only at the file boundary.
type Store struct {
	mu   sync.Mutex
	path string

	Users      map[int]*models.User     `json:"users"`
	Posts      map[int]*models.Post     `json:"posts"`
	Categories map[int]*models.Category `json:"categories"`
	Comments   map[int]*models.Comment  `json:"comments"`

	// Composite-key collections keep first-insertion order, which the
	// ID-keyed maps get for free from their monotonic counters.
	Favorites     *OrderedMap[*models.Favorite]     `json:"favorites"`
	Subscriptions *OrderedMap[*models.Subscription] `json:"subscriptions"`

	NextUserID     int `json:"next_user_id"`
	NextPostID     int `json:"next_post_id"`
	NextCategoryID int `json:"next_category_id"`
	NextCommentID  int `json:"next_comment_id"`
}

// New creates an empty store backed by the JSON document at path.
func New(path string) *Store {
	s := &Store{path: path}
	s.reset()
	return s
}

// Lock acquires the store mutex. Handlers run a read-modify-persist sequence
// that assumes no interleaving, so the serialization middleware holds the
// lock for the duration of every request.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store mutex.
func (s *Store) Unlock() { s.mu.Unlock() }

// Load reads the JSON document if it exists and is non-empty. A missing or
// empty file, or any read or decode failure, resets the store to an empty
// state and writes a fresh document immediately. Unreadable prior state is
// discarded silently.
func (s *Store) Load() error {
	info, err := os.Stat(s.path)
	if err != nil || info.Size() == 0 {
		s.reset()
		return s.Save()
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.reset()
		return s.Save()
	}
	if err := json.Unmarshal(raw, s); err != nil {
		s.reset()
		return s.Save()
	}

	s.normalize()
	return nil
}

// Save serializes the complete current state with 2-space indentation and
// HTML escaping off, writing to a temp file in the same directory and
// renaming over the target so a crash cannot leave a truncated document.
func (s *Store) Save() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return err
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func (s *Store) reset() {
	s.Users = make(map[int]*models.User)
	s.Posts = make(map[int]*models.Post)
	s.Categories = make(map[int]*models.Category)
	s.Comments = make(map[int]*models.Comment)
	s.Favorites = NewOrderedMap[*models.Favorite]()
	s.Subscriptions = NewOrderedMap[*models.Subscription]()
	s.NextUserID = 1
	s.NextPostID = 1
	s.NextCategoryID = 1
	s.NextCommentID = 1
}

// normalize fills in whatever a hand-edited or older document omits.
func (s *Store) normalize() {
	if s.Users == nil {
		s.Users = make(map[int]*models.User)
	}
	if s.Posts == nil {
		s.Posts = make(map[int]*models.Post)
	}
	if s.Categories == nil {
		s.Categories = make(map[int]*models.Category)
	}
	if s.Comments == nil {
		s.Comments = make(map[int]*models.Comment)
	}
	if s.Favorites == nil {
		s.Favorites = NewOrderedMap[*models.Favorite]()
	}
	if s.Subscriptions == nil {
		s.Subscriptions = NewOrderedMap[*models.Subscription]()
	}
	if s.NextUserID < 1 {
		s.NextUserID = 1
	}
	if s.NextPostID < 1 {
		s.NextPostID = 1
	}
	if s.NextCategoryID < 1 {
		s.NextCategoryID = 1
	}
	if s.NextCommentID < 1 {
		s.NextCommentID = 1
	}
}
