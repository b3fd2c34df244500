package repositories

import (
	"sort"
	"time"

	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/store"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(req *models.CreateUserRequest) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(id int, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(id int) error
}

// JSONUserRepository implements UserRepository on the JSON document store
type JSONUserRepository struct {
	store *store.Store
}

// NewJSONUserRepository creates a new JSONUserRepository
func NewJSONUserRepository(st *store.Store) *JSONUserRepository {
	return &JSONUserRepository{store: st}
}

// CreateUser assigns the next user ID, stamps both timestamps with the same
// instant, stores the record and flushes the dataset.
func (r *JSONUserRepository) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		ID:        r.store.NextUserID,
		Email:     req.Email,
		Login:     req.Login,
		Password:  req.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.NextUserID++
	r.store.Users[user.ID] = user

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *JSONUserRepository) GetUserByID(id int) (*models.User, error) {
	user, ok := r.store.Users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetUsers retrieves all users in insertion order. IDs are monotonic and
// never reused, so ascending ID equals insertion order.
func (r *JSONUserRepository) GetUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(r.store.Users))
	for _, u := range r.store.Users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// UpdateUser replaces the fields present and non-empty in the request,
// leaving absent fields untouched, and restamps updated_at.
func (r *JSONUserRepository) UpdateUser(id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, ok := r.store.Users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Login != "" {
		user.Login = req.Login
	}
	if req.Password != "" {
		user.Password = req.Password
	}
	user.UpdatedAt = time.Now()

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user by ID. Posts, comments, favorites and
// subscriptions referencing the user are left in place: deletes do not
// cascade, and display names resolve to "Unknown" afterwards.
func (r *JSONUserRepository) DeleteUser(id int) error {
	if _, ok := r.store.Users[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.Users, id)
	return r.store.Save()
}
