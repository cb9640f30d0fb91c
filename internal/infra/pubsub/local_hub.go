package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFeedClosed is returned when subscribing to a feed that was shut down.
var ErrFeedClosed = errors.New("change feed closed")

// Hub fans change events out to the in-process subscriptions of each user.
// Publishing never blocks: an event that does not fit a subscriber's buffer is dropped for that subscriber.
type Hub struct {
	mu         sync.RWMutex
	subs       map[uuid.UUID]map[*hubSubscription]struct{}
	bufferSize int
	closed     bool
	logger     *slog.Logger
}

// NewHub creates an in-process hub with the given per-subscription buffer.
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &Hub{
		subs:       make(map[uuid.UUID]map[*hubSubscription]struct{}),
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// Publish delivers the event to every subscription of the record's owner.
func (h *Hub) Publish(_ context.Context, event entity.ChangeEvent) error {
	if event.Record == nil {
		return errors.New("change event without record")
	}

	h.dispatch(event)

	return nil
}

func (h *Hub) dispatch(event entity.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[event.Record.UserID] {
		select {
		case sub.events <- event:
		default:
			h.logger.Warn("Dropping change event for slow subscriber",
				slog.String("user_id", event.Record.UserID.String()),
				slog.String("notification_id", event.Record.ID.String()),
				slog.String("kind", string(event.Kind)),
			)
		}
	}
}

// Subscribe opens a subscription that ends when ctx is done or Close is called.
func (h *Hub) Subscribe(ctx context.Context, userID uuid.UUID) (service.FeedSubscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrFeedClosed
	}

	sub := &hubSubscription{
		hub:    h,
		userID: userID,
		events: make(chan entity.ChangeEvent, h.bufferSize),
	}

	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*hubSubscription]struct{})
	}
	h.subs[userID][sub] = struct{}{}

	sub.stop = context.AfterFunc(ctx, func() { _ = sub.Close() })

	return sub, nil
}

// SubscriberCount returns the number of open subscriptions of a user.
func (h *Hub) SubscriberCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[userID])
}

// Close ends every open subscription and rejects new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil
	}
	h.closed = true

	subs := make([]*hubSubscription, 0)
	for _, userSubs := range h.subs {
		for sub := range userSubs {
			subs = append(subs, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}

	return nil
}

func (h *Hub) remove(sub *hubSubscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub.stop != nil {
		sub.stop()
	}

	if userSubs, ok := h.subs[sub.userID]; ok {
		delete(userSubs, sub)
		if len(userSubs) == 0 {
			delete(h.subs, sub.userID)
		}
	}
	// Closed under the write lock so dispatch can never send on a closed channel.
	close(sub.events)
}

type hubSubscription struct {
	hub    *Hub
	userID uuid.UUID
	events chan entity.ChangeEvent
	stop   func() bool
	once   sync.Once
}

func (s *hubSubscription) Events() <-chan entity.ChangeEvent {
	return s.events
}

func (s *hubSubscription) Close() error {
	s.once.Do(func() { s.hub.remove(s) })

	return nil
}
