package models

import "time"

// Subscription links a subscriber to an author they follow. Stored under the
// composite key "{subscriber_id}_{target_user_id}".
type Subscription struct {
	SubscriberID int       `json:"subscriber_id"`
	TargetUserID int       `json:"target_user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSubscriptionRequest defines the request body for subscribing to a user
type CreateSubscriptionRequest struct {
	SubscriberID int `json:"subscriber_id" validate:"required,min=1"`
	TargetUserID int `json:"target_user_id" validate:"required,min=1"`
}
