package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisChannelPrefix = "notifications"

// redisFeed implements ChangeFeed with one Redis pub/sub channel per user,
// so every instance behind the load balancer sees every change.
type redisFeed struct {
	client     *redis.Client
	prefix     string
	bufferSize int
	logger     *slog.Logger
}

// NewRedisFeed creates a Redis backed change feed and checks the connection.
func NewRedisFeed(ctx context.Context, client *redis.Client, prefix string, bufferSize int, logger *slog.Logger) (service.ChangeFeed, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	if prefix == "" {
		prefix = defaultRedisChannelPrefix
	}

	return &redisFeed{
		client:     client,
		prefix:     prefix,
		bufferSize: max(bufferSize, 1),
		logger:     logger,
	}, nil
}

func (f *redisFeed) channel(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", f.prefix, userID)
}

// Publish sends the event to the owner's channel.
func (f *redisFeed) Publish(ctx context.Context, event entity.ChangeEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := f.client.Publish(ctx, f.channel(event.Record.UserID), data).Err(); err != nil {
		return errors.Wrap(err, "failed to publish change event to redis")
	}

	return nil
}

// Subscribe listens on the user's channel until ctx is done or the subscription is closed.
func (f *redisFeed) Subscribe(ctx context.Context, userID uuid.UUID) (service.FeedSubscription, error) {
	ps := f.client.Subscribe(ctx, f.channel(userID))

	// Wait for the subscription confirmation so no event published after this call is missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()

		return nil, errors.Wrap(err, "failed to subscribe to redis channel")
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &redisSubscription{
		ps:     ps,
		events: make(chan entity.ChangeEvent, f.bufferSize),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go f.pump(subCtx, sub)
	context.AfterFunc(ctx, func() { _ = sub.Close() })

	return sub, nil
}

func (f *redisFeed) pump(ctx context.Context, sub *redisSubscription) {
	defer close(sub.done)
	defer close(sub.events)

	messages := sub.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			event, err := decodeEvent([]byte(msg.Payload))
			if err != nil {
				f.logger.Warn("Skipping malformed change event", slog.String("channel", msg.Channel), slog.Any("error", err))

				continue
			}

			select {
			case sub.events <- event:
			default:
				f.logger.Warn("Dropping change event for slow subscriber",
					slog.String("channel", msg.Channel),
					slog.String("notification_id", event.Record.ID.String()),
				)
			}
		}
	}
}

// Close closes the Redis client.
func (f *redisFeed) Close() error {
	return errors.WithStack(f.client.Close())
}

type redisSubscription struct {
	ps     *redis.PubSub
	events chan entity.ChangeEvent
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *redisSubscription) Events() <-chan entity.ChangeEvent {
	return s.events
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		s.cancel()
		err = s.ps.Close()
		<-s.done
	})

	// The transport may already be gone; closing is still a success for the caller.
	if errors.Is(err, redis.ErrClosed) {
		return nil
	}

	return errors.WithStack(err)
}
