package repositories

import (
	"sort"
	"time"

	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/store"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(req *models.CreatePostRequest) (*models.Post, error)
	GetPostByID(id int) (*models.Post, error)
	GetPosts() ([]models.Post, error)
	UpdatePost(id int, req *models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id int) error
	AttachCategory(postID int, category models.Category) error
	GetPostCategories(postID int) ([]models.Category, error)
}

// JSONPostRepository implements PostRepository on the JSON document store
type JSONPostRepository struct {
	store *store.Store
}

// NewJSONPostRepository creates a new JSONPostRepository
func NewJSONPostRepository(st *store.Store) *JSONPostRepository {
	return &JSONPostRepository{store: st}
}

// CreatePost assigns the next post ID and stores the record. Author
// existence is checked by the handler before any mutation happens.
func (r *JSONPostRepository) CreatePost(req *models.CreatePostRequest) (*models.Post, error) {
	now := time.Now()
	post := &models.Post{
		ID:        r.store.NextPostID,
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.NextPostID++
	r.store.Posts[post.ID] = post

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostByID retrieves a post by ID
func (r *JSONPostRepository) GetPostByID(id int) (*models.Post, error) {
	post, ok := r.store.Posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return post, nil
}

// GetPosts retrieves all posts in insertion order
func (r *JSONPostRepository) GetPosts() ([]models.Post, error) {
	posts := make([]models.Post, 0, len(r.store.Posts))
	for _, p := range r.store.Posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// UpdatePost replaces title and content when non-empty and always restamps
// updated_at, even if nothing changed.
func (r *JSONPostRepository) UpdatePost(id int, req *models.UpdatePostRequest) (*models.Post, error) {
	post, ok := r.store.Posts[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	post.UpdatedAt = time.Now()

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post by ID. Comments and favorites referencing the
// post are left in place.
func (r *JSONPostRepository) DeletePost(id int) error {
	if _, ok := r.store.Posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.Posts, id)
	return r.store.Save()
}

// AttachCategory appends a category snapshot to the post unless an identical
// snapshot is already attached. Comparison is by value, so a category edited
// after attachment counts as a different snapshot.
func (r *JSONPostRepository) AttachCategory(postID int, category models.Category) error {
	post, ok := r.store.Posts[postID]
	if !ok {
		return ErrNotFound
	}

	for _, c := range post.Categories {
		if c == category {
			return nil
		}
	}
	post.Categories = append(post.Categories, category)
	return r.store.Save()
}

// GetPostCategories retrieves the category snapshots attached to a post in
// attachment order.
func (r *JSONPostRepository) GetPostCategories(postID int) ([]models.Category, error) {
	post, ok := r.store.Posts[postID]
	if !ok {
		return nil, ErrNotFound
	}
	if post.Categories == nil {
		return []models.Category{}, nil
	}
	return post.Categories, nil
}
