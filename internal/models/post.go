package models

import "time"

// Post represents a blog post. Categories holds value snapshots taken at
// attach time; later edits or deletes of a Category do not propagate here.
type Post struct {
	ID         int        `json:"id"`
	AuthorID   int        `json:"author_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Categories []Category `json:"categories,omitempty"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	AuthorID int    `json:"author_id" validate:"required,min=1"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// Empty fields leave the stored value untouched.
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// PostResponse is a Post with the author's login resolved for display.
// AuthorName falls back to "Unknown" when the author has been deleted.
type PostResponse struct {
	Post
	AuthorName string `json:"author_name"`
}
