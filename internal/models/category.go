package models

import "time"

// Category is a label posts can be tagged with. All fields are comparable:
// attached snapshots embedded in posts are deduplicated with ==.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCategoryRequest defines the request body for creating a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// AttachCategoryRequest defines the request body for attaching a category to a post
type AttachCategoryRequest struct {
	PostID     int `json:"post_id" validate:"required,min=1"`
	CategoryID int `json:"category_id" validate:"required,min=1"`
}
