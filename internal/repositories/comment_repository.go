package repositories

import (
	"sort"
	"time"

	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/store"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(req *models.CreateCommentRequest) (*models.Comment, error)
	GetCommentByID(id int) (*models.Comment, error)
	GetComments() ([]models.Comment, error)
	GetCommentsByPostID(postID int) ([]models.Comment, error)
	DeleteComment(id int) error
}

// JSONCommentRepository implements CommentRepository on the JSON document store
type JSONCommentRepository struct {
	store *store.Store
}

// NewJSONCommentRepository creates a new JSONCommentRepository
func NewJSONCommentRepository(st *store.Store) *JSONCommentRepository {
	return &JSONCommentRepository{store: st}
}

// CreateComment assigns the next comment ID and stores the record. Both
// foreign keys are checked by the handler before any mutation happens.
func (r *JSONCommentRepository) CreateComment(req *models.CreateCommentRequest) (*models.Comment, error) {
	now := time.Now()
	comment := &models.Comment{
		ID:        r.store.NextCommentID,
		PostID:    req.PostID,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.NextCommentID++
	r.store.Comments[comment.ID] = comment

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentByID retrieves a comment by ID
func (r *JSONCommentRepository) GetCommentByID(id int) (*models.Comment, error) {
	comment, ok := r.store.Comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return comment, nil
}

// GetComments retrieves all comments in insertion order
func (r *JSONCommentRepository) GetComments() ([]models.Comment, error) {
	comments := make([]models.Comment, 0, len(r.store.Comments))
	for _, c := range r.store.Comments {
		comments = append(comments, *c)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// GetCommentsByPostID retrieves the comments on one post in insertion order.
// An unknown post ID yields an empty list, not an error.
func (r *JSONCommentRepository) GetCommentsByPostID(postID int) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	for _, c := range r.store.Comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// DeleteComment deletes a comment by ID
func (r *JSONCommentRepository) DeleteComment(id int) error {
	if _, ok := r.store.Comments[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.Comments, id)
	return r.store.Save()
}
