package repositories

import (
	"sort"
	"time"

	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/store"
)

// CategoryRepository defines the interface for category data operations.
// Categories have no update endpoint.
type CategoryRepository interface {
	CreateCategory(req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(id int) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	DeleteCategory(id int) error
}

// JSONCategoryRepository implements CategoryRepository on the JSON document store
type JSONCategoryRepository struct {
	store *store.Store
}

// NewJSONCategoryRepository creates a new JSONCategoryRepository
func NewJSONCategoryRepository(st *store.Store) *JSONCategoryRepository {
	return &JSONCategoryRepository{store: st}
}

// CreateCategory assigns the next category ID and stores the record
func (r *JSONCategoryRepository) CreateCategory(req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:          r.store.NextCategoryID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	r.store.NextCategoryID++
	r.store.Categories[category.ID] = category

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategoryByID retrieves a category by ID
func (r *JSONCategoryRepository) GetCategoryByID(id int) (*models.Category, error) {
	category, ok := r.store.Categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return category, nil
}

// GetCategories retrieves all categories in insertion order
func (r *JSONCategoryRepository) GetCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(r.store.Categories))
	for _, c := range r.store.Categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// DeleteCategory deletes a category by ID. Snapshots already attached to
// posts are unaffected.
func (r *JSONCategoryRepository) DeleteCategory(id int) error {
	if _, ok := r.store.Categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.Categories, id)
	return r.store.Save()
}
