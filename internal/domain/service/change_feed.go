package service

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeFeed carries notification change events to the sessions of their owners.
type ChangeFeed interface {
	// Publish delivers an event to every live subscription of the record's owner.
	Publish(ctx context.Context, event entity.ChangeEvent) error

	// Subscribe opens a subscription to the changes of one user's notifications.
	Subscribe(ctx context.Context, userID uuid.UUID) (FeedSubscription, error)

	// Close releases any resources held by the feed.
	Close() error
}

// FeedSubscription is a single open subscription. Close is idempotent.
type FeedSubscription interface {
	Events() <-chan entity.ChangeEvent
	Close() error
}
