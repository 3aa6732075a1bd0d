package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grigorevsd/subscription-service/internal/models"
)

func TestStorage_CreateAndGetSubscription(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	user := factory.CreateUser(t, "alice")
	typeID := factory.TypeIDByName(t, "Netflix")

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	id, err := storage.CreateSubscription(ctx, models.Subscription{
		UserID:             user.ID,
		SubscriptionTypeID: typeID,
		StartDate:          start,
		EndDate:            &end,
		Status:             models.StatusActive,
	})
	require.NoError(t, err)

	got, err := storage.GetSubscription(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, typeID, got.SubscriptionTypeID)
	assert.Equal(t, "Netflix", got.SubscriptionTypeName)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.True(t, got.StartDate.Equal(start))
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(end))
}

func TestStorage_GetSubscription_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetSubscription(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_ListSubscriptionsByUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	alice := factory.CreateUser(t, "alice")
	bob := factory.CreateUser(t, "bob")
	netflix := factory.TypeIDByName(t, "Netflix")
	spotify := factory.TypeIDByName(t, "Spotify")

	now := time.Now()
	factory.CreateSubscription(t, alice.ID, netflix, now, nil, "ACTIVE")
	factory.CreateSubscription(t, alice.ID, spotify, now, nil, "CANCELLED")
	factory.CreateSubscription(t, bob.ID, netflix, now, nil, "ACTIVE")

	got, err := storage.ListSubscriptionsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, sub := range got {
		assert.Equal(t, alice.ID, sub.UserID)
		assert.NotEmpty(t, sub.SubscriptionTypeName)
	}

	got, err = storage.ListSubscriptionsByUser(ctx, 12345)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStorage_DeleteSubscription(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	user := factory.CreateUser(t, "alice")
	typeID := factory.TypeIDByName(t, "Netflix")
	id := factory.CreateSubscription(t, user.ID, typeID, time.Now(), nil, "ACTIVE")

	rows, err := storage.DeleteSubscription(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = storage.DeleteSubscription(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestStorage_DeleteUser_CascadesSubscriptions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	user := factory.CreateUser(t, "alice")
	typeID := factory.TypeIDByName(t, "Netflix")
	subID := factory.CreateSubscription(t, user.ID, typeID, time.Now(), nil, "ACTIVE")

	_, err := storage.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	_, err = storage.GetSubscription(ctx, subID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_TopSubscriptionTypes(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	got, err := storage.TopSubscriptionTypes(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	alice := factory.CreateUser(t, "alice")
	bob := factory.CreateUser(t, "bob")
	netflix := factory.TypeIDByName(t, "Netflix")
	spotify := factory.TypeIDByName(t, "Spotify")
	youtube := factory.TypeIDByName(t, "YouTube Premium")
	disney := factory.TypeIDByName(t, "Disney+")

	now := time.Now()
	// netflix: 3, spotify: 2, youtube: 1, disney: 1
	factory.CreateSubscription(t, alice.ID, netflix, now, nil, "ACTIVE")
	factory.CreateSubscription(t, alice.ID, netflix, now, nil, "CANCELLED")
	factory.CreateSubscription(t, bob.ID, netflix, now, nil, "ACTIVE")
	factory.CreateSubscription(t, alice.ID, spotify, now, nil, "ACTIVE")
	factory.CreateSubscription(t, bob.ID, spotify, now, nil, "EXPIRED")
	factory.CreateSubscription(t, alice.ID, youtube, now, nil, "ACTIVE")
	factory.CreateSubscription(t, bob.ID, disney, now, nil, "ACTIVE")

	got, err = storage.TopSubscriptionTypes(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Netflix", got[0].Name)
	assert.Equal(t, int64(3), got[0].Count)
	assert.Equal(t, "Spotify", got[1].Name)
	assert.Equal(t, int64(2), got[1].Count)
	// Third place is either YouTube Premium or Disney+, both with one
	// subscription each.
	assert.Equal(t, int64(1), got[2].Count)
}
