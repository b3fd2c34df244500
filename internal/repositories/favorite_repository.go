package repositories

import (
	"fmt"
	"time"

	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/store"
)

// FavoriteRepository defines the interface for favorite data operations.
// Records live under the composite key "{user_id}_{post_id}".
type FavoriteRepository interface {
	PutFavorite(userID, postID int) (*models.Favorite, error)
	GetFavorites() ([]models.Favorite, error)
	GetFavoritesByUserID(userID int) ([]models.Favorite, error)
	DeleteFavorite(userID, postID int) error
}

// JSONFavoriteRepository implements FavoriteRepository on the JSON document store
type JSONFavoriteRepository struct {
	store *store.Store
}

// NewJSONFavoriteRepository creates a new JSONFavoriteRepository
func NewJSONFavoriteRepository(st *store.Store) *JSONFavoriteRepository {
	return &JSONFavoriteRepository{store: st}
}

func favoriteKey(userID, postID int) string {
	return fmt.Sprintf("%d_%d", userID, postID)
}

// PutFavorite stores a favorite under its composite key. An existing record
// at the same key is overwritten silently, refreshing created_at but keeping
// its position in the listing order.
func (r *JSONFavoriteRepository) PutFavorite(userID, postID int) (*models.Favorite, error) {
	favorite := &models.Favorite{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	r.store.Favorites.Put(favoriteKey(userID, postID), favorite)

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return favorite, nil
}

// GetFavorites retrieves all favorites in first-insertion order
func (r *JSONFavoriteRepository) GetFavorites() ([]models.Favorite, error) {
	values := r.store.Favorites.Values()
	favorites := make([]models.Favorite, 0, len(values))
	for _, f := range values {
		favorites = append(favorites, *f)
	}
	return favorites, nil
}

// GetFavoritesByUserID retrieves one user's favorites. An unknown user ID
// yields an empty list, not an error.
func (r *JSONFavoriteRepository) GetFavoritesByUserID(userID int) ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)
	for _, f := range r.store.Favorites.Values() {
		if f.UserID == userID {
			favorites = append(favorites, *f)
		}
	}
	return favorites, nil
}

// DeleteFavorite removes the record at the composite key
func (r *JSONFavoriteRepository) DeleteFavorite(userID, postID int) error {
	if !r.store.Favorites.Delete(favoriteKey(userID, postID)) {
		return ErrNotFound
	}
	return r.store.Save()
}
