package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	PostID  int    `json:"post_id" validate:"required,min=1"`
	UserID  int    `json:"user_id" validate:"required,min=1"`
	Content string `json:"content" validate:"required"`
}

// CommentResponse is a Comment with the commenter's login resolved for
// display, "Unknown" when the commenter has been deleted.
type CommentResponse struct {
	Comment
	AuthorName string `json:"author_name"`
}
