package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutSubscriptionOverwritesSameKey(t *testing.T) {
	repo := NewJSONSubscriptionRepository(newTestStore(t))

	_, err := repo.PutSubscription(1, 2)
	require.NoError(t, err)
	_, err = repo.PutSubscription(1, 2)
	require.NoError(t, err)

	subscriptions, err := repo.GetSubscriptions()
	require.NoError(t, err)
	assert.Len(t, subscriptions, 1)
}

func TestGetSubscriptionsInsertionOrderWithMultiDigitIDs(t *testing.T) {
	repo := NewJSONSubscriptionRepository(newTestStore(t))

	_, err := repo.PutSubscription(12, 1)
	require.NoError(t, err)
	_, err = repo.PutSubscription(3, 1)
	require.NoError(t, err)

	subscriptions, err := repo.GetSubscriptions()
	require.NoError(t, err)
	require.Len(t, subscriptions, 2)
	assert.Equal(t, 12, subscriptions[0].SubscriberID)
	assert.Equal(t, 3, subscriptions[1].SubscriberID)
}

func TestSubscriptionFilters(t *testing.T) {
	repo := NewJSONSubscriptionRepository(newTestStore(t))

	_, err := repo.PutSubscription(1, 2)
	require.NoError(t, err)
	_, err = repo.PutSubscription(1, 3)
	require.NoError(t, err)
	_, err = repo.PutSubscription(3, 2)
	require.NoError(t, err)

	outgoing, err := repo.GetSubscriptionsBySubscriber(1)
	require.NoError(t, err)
	assert.Len(t, outgoing, 2)

	incoming, err := repo.GetSubscriptionsByTarget(2)
	require.NoError(t, err)
	assert.Len(t, incoming, 2)

	none, err := repo.GetSubscriptionsByTarget(42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteSubscription(t *testing.T) {
	repo := NewJSONSubscriptionRepository(newTestStore(t))

	_, err := repo.PutSubscription(1, 2)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteSubscription(1, 2))
	assert.ErrorIs(t, repo.DeleteSubscription(1, 2), ErrNotFound)
}
