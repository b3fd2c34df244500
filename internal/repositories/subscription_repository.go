package repositories

import (
	"fmt"
	"time"

	"github.com/web-project/backend/internal/models"
	"github.com/web-project/backend/internal/store"
)

// SubscriptionRepository defines the interface for subscription data
// operations. Records live under the composite key
// "{subscriber_id}_{target_user_id}".
type SubscriptionRepository interface {
	PutSubscription(subscriberID, targetUserID int) (*models.Subscription, error)
	GetSubscriptions() ([]models.Subscription, error)
	GetSubscriptionsBySubscriber(subscriberID int) ([]models.Subscription, error)
	GetSubscriptionsByTarget(targetUserID int) ([]models.Subscription, error)
	DeleteSubscription(subscriberID, targetUserID int) error
}

// JSONSubscriptionRepository implements SubscriptionRepository on the JSON document store
type JSONSubscriptionRepository struct {
	store *store.Store
}

// NewJSONSubscriptionRepository creates a new JSONSubscriptionRepository
func NewJSONSubscriptionRepository(st *store.Store) *JSONSubscriptionRepository {
	return &JSONSubscriptionRepository{store: st}
}

func subscriptionKey(subscriberID, targetUserID int) string {
	return fmt.Sprintf("%d_%d", subscriberID, targetUserID)
}

// PutSubscription stores a subscription under its composite key, silently
// overwriting an existing record in place. The self-subscription check
// belongs to the handler, before any mutation.
func (r *JSONSubscriptionRepository) PutSubscription(subscriberID, targetUserID int) (*models.Subscription, error) {
	subscription := &models.Subscription{
		SubscriberID: subscriberID,
		TargetUserID: targetUserID,
		CreatedAt:    time.Now(),
	}
	r.store.Subscriptions.Put(subscriptionKey(subscriberID, targetUserID), subscription)

	if err := r.store.Save(); err != nil {
		return nil, err
	}
	return subscription, nil
}

// GetSubscriptions retrieves all subscriptions in first-insertion order
func (r *JSONSubscriptionRepository) GetSubscriptions() ([]models.Subscription, error) {
	values := r.store.Subscriptions.Values()
	subscriptions := make([]models.Subscription, 0, len(values))
	for _, s := range values {
		subscriptions = append(subscriptions, *s)
	}
	return subscriptions, nil
}

// GetSubscriptionsBySubscriber retrieves the subscriptions a user holds.
// An unknown user ID yields an empty list, not an error.
func (r *JSONSubscriptionRepository) GetSubscriptionsBySubscriber(subscriberID int) ([]models.Subscription, error) {
	subscriptions := make([]models.Subscription, 0)
	for _, s := range r.store.Subscriptions.Values() {
		if s.SubscriberID == subscriberID {
			subscriptions = append(subscriptions, *s)
		}
	}
	return subscriptions, nil
}

// GetSubscriptionsByTarget retrieves the subscriptions pointing at a user
func (r *JSONSubscriptionRepository) GetSubscriptionsByTarget(targetUserID int) ([]models.Subscription, error) {
	subscriptions := make([]models.Subscription, 0)
	for _, s := range r.store.Subscriptions.Values() {
		if s.TargetUserID == targetUserID {
			subscriptions = append(subscriptions, *s)
		}
	}
	return subscriptions, nil
}

// DeleteSubscription removes the record at the composite key
func (r *JSONSubscriptionRepository) DeleteSubscription(subscriberID, targetUserID int) error {
	if !r.store.Subscriptions.Delete(subscriptionKey(subscriberID, targetUserID)) {
		return ErrNotFound
	}
	return r.store.Save()
}
