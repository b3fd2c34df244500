package models

import "time"

// User represents a registered account. There is no authentication layer in
// this service, so the password is stored as submitted.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest defines the request body for creating a new user
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for updating an existing user.
// Absent or empty fields leave the stored value untouched.
type UpdateUserRequest struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Login    string `json:"login,omitempty" validate:"omitempty,min=1,max=50"`
	Password string `json:"password,omitempty"`
}
