package session

import (
	"context"
	"testing"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (service.SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, &config.Config{
		Session: &config.SessionConfig{TTL: 10 * time.Minute},
	})

	return store, mr
}

func TestRedisStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := &entity.Session{
		UserID:    42,
		Flow:      entity.FlowCheckout,
		Step:      entity.StepCheckoutAddress,
		Data:      map[string]string{"delivery_type": "delivery"},
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestRedisStore_Get_NoSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), 42)

	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_SessionsAreIsolatedPerUser(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{UserID: 42, Flow: entity.FlowCheckout, Step: entity.StepCheckoutDelivery}))
	require.NoError(t, store.Save(ctx, &entity.Session{UserID: 43, Flow: entity.FlowFeedback, Step: entity.StepFeedbackComment}))

	got, err := store.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, entity.FlowCheckout, got.Flow)

	got, err = store.Get(ctx, 43)
	require.NoError(t, err)
	assert.Equal(t, entity.FlowFeedback, got.Flow)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{UserID: 42, Flow: entity.FlowCheckout, Step: entity.StepCheckoutDelivery}))
	require.NoError(t, store.Delete(ctx, 42))

	_, err := store.Get(ctx, 42)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, 42))
}

func TestRedisStore_SessionsExpire(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &entity.Session{UserID: 42, Flow: entity.FlowCheckout, Step: entity.StepCheckoutDelivery}))

	mr.FastForward(11 * time.Minute)

	_, err := store.Get(ctx, 42)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_SaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	session := &entity.Session{UserID: 42, Flow: entity.FlowCheckout, Step: entity.StepCheckoutDelivery}
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(9 * time.Minute)
	require.NoError(t, store.Save(ctx, session))
	mr.FastForward(9 * time.Minute)

	_, err := store.Get(ctx, 42)
	assert.NoError(t, err)
}
