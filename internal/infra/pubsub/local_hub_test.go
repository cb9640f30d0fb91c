package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEvent(kind entity.ChangeKind, userID uuid.UUID) entity.ChangeEvent {
	return entity.ChangeEvent{
		Kind: kind,
		Record: &entity.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     "Device assigned",
			CreatedAt: time.Now(),
		},
	}
}

func receive(t *testing.T, ch <-chan entity.ChangeEvent) entity.ChangeEvent {
	t.Helper()

	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")

		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")

		return entity.ChangeEvent{}
	}
}

func TestHub_DeliversOnlyToOwner(t *testing.T) {
	hub := NewHub(4, newDiscardLogger())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	aliceSub, err := hub.Subscribe(ctx, alice)
	require.NoError(t, err)
	bobSub, err := hub.Subscribe(ctx, bob)
	require.NoError(t, err)

	event := newEvent(entity.ChangeInsert, alice)
	require.NoError(t, hub.Publish(ctx, event))

	got := receive(t, aliceSub.Events())
	assert.Equal(t, event.Record.ID, got.Record.ID)
	assert.Equal(t, entity.ChangeInsert, got.Kind)

	select {
	case <-bobSub.Events():
		t.Fatal("bob must not receive alice's event")
	default:
	}
}

func TestHub_PreservesPublishOrder(t *testing.T) {
	hub := NewHub(8, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	sub, err := hub.Subscribe(ctx, userID)
	require.NoError(t, err)

	kinds := []entity.ChangeKind{entity.ChangeInsert, entity.ChangeUpdate, entity.ChangeDelete}
	for _, kind := range kinds {
		require.NoError(t, hub.Publish(ctx, newEvent(kind, userID)))
	}

	for _, kind := range kinds {
		assert.Equal(t, kind, receive(t, sub.Events()).Kind)
	}
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	hub := NewHub(1, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	sub, err := hub.Subscribe(ctx, userID)
	require.NoError(t, err)

	first := newEvent(entity.ChangeInsert, userID)
	require.NoError(t, hub.Publish(ctx, first))
	require.NoError(t, hub.Publish(ctx, newEvent(entity.ChangeInsert, userID)))

	assert.Equal(t, first.Record.ID, receive(t, sub.Events()).Record.ID)
	select {
	case <-sub.Events():
		t.Fatal("second event should have been dropped")
	default:
	}
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := NewHub(1, newDiscardLogger())
	userID := uuid.New()

	sub, err := hub.Subscribe(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, hub.SubscriberCount(userID))

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	assert.Equal(t, 0, hub.SubscriberCount(userID))

	_, ok := <-sub.Events()
	assert.False(t, ok)

	require.NoError(t, hub.Publish(context.Background(), newEvent(entity.ChangeInsert, userID)))
}

func TestHub_ContextCancelClosesSubscription(t *testing.T) {
	hub := NewHub(1, newDiscardLogger())
	userID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := hub.Subscribe(ctx, userID)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed after cancel")
	}
	assert.NoError(t, sub.Close())
}

func TestHub_CloseRejectsNewSubscriptions(t *testing.T) {
	hub := NewHub(1, newDiscardLogger())
	userID := uuid.New()

	sub, err := hub.Subscribe(context.Background(), userID)
	require.NoError(t, err)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())

	_, ok := <-sub.Events()
	assert.False(t, ok)
	assert.NoError(t, sub.Close())

	_, err = hub.Subscribe(context.Background(), userID)
	assert.ErrorIs(t, err, ErrFeedClosed)
}

func TestHub_PublishRejectsEventWithoutRecord(t *testing.T) {
	hub := NewHub(1, newDiscardLogger())

	err := hub.Publish(context.Background(), entity.ChangeEvent{Kind: entity.ChangeInsert})
	assert.Error(t, err)
}

func TestDecodeEvent(t *testing.T) {
	userID := uuid.New()
	event := newEvent(entity.ChangeUpdate, userID)

	data, err := encodeEvent(event)
	require.NoError(t, err)

	decoded, err := decodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeUpdate, decoded.Kind)
	assert.Equal(t, event.Record.ID, decoded.Record.ID)
	assert.Equal(t, userID, decoded.Record.UserID)

	_, err = decodeEvent([]byte(`{"type":"UPSERT","record":{"id":"` + uuid.NewString() + `"}}`))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`{"type":"INSERT"}`))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`not json`))
	assert.Error(t, err)
}
