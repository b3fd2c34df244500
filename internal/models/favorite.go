package models

import "time"

// Favorite marks a post as favorited by a user. Stored under the composite
// key "{user_id}_{post_id}"; favoriting the same pair again overwrites the
// record and refreshes CreatedAt.
type Favorite struct {
	UserID    int       `json:"user_id"`
	PostID    int       `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFavoriteRequest defines the request body for favoriting a post
type CreateFavoriteRequest struct {
	UserID int `json:"user_id" validate:"required,min=1"`
	PostID int `json:"post_id" validate:"required,min=1"`
}
