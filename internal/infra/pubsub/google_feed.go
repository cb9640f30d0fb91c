package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// googleFeed publishes change events to a Google Pub/Sub topic and receives them through
// this instance's subscription, fanning them into an in-process hub.
type googleFeed struct {
	client     *pubsub.Client
	publisher  *pubsub.Publisher
	subscriber *pubsub.Subscriber
	hub        *Hub
	logger     *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGoogleFeed creates a Google Pub/Sub backed change feed and starts receiving.
func NewGoogleFeed(ctx context.Context, projectID, topicID, subscriptionID string, bufferSize int, logger *slog.Logger) (service.ChangeFeed, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	receiveCtx, cancel := context.WithCancel(context.Background())
	feed := &googleFeed{
		client:     client,
		publisher:  client.Publisher(topicID),
		subscriber: client.Subscriber(subscriptionID),
		hub:        NewHub(bufferSize, logger),
		logger:     logger,
		cancel:     cancel,
	}

	feed.wg.Add(1)
	go feed.receive(receiveCtx)

	logger.Info("Google Pub/Sub change feed initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.String("subscription_id", subscriptionID),
	)

	return feed, nil
}

func (f *googleFeed) receive(ctx context.Context) {
	defer f.wg.Done()

	err := f.subscriber.Receive(ctx, func(_ context.Context, msg *pubsub.Message) {
		event, err := decodeEvent(msg.Data)
		if err != nil {
			f.logger.Warn("[GooglePubSub] Skipping malformed change event", slog.String("message_id", msg.ID), slog.Any("error", err))
			msg.Ack()

			return
		}

		f.hub.dispatch(event)
		msg.Ack()
	})
	if err != nil && ctx.Err() == nil {
		f.logger.Error("[GooglePubSub] Receive stopped", slog.Any("error", err))
	}
}

// Publish publishes the event to the topic and waits for the server acknowledgement.
func (f *googleFeed) Publish(ctx context.Context, event entity.ChangeEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := f.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"user_id":         event.Record.UserID.String(),
			"notification_id": event.Record.ID.String(),
			"kind":            string(event.Kind),
		},
	})

	if _, err := result.Get(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Subscribe opens an in-process subscription fed by the Pub/Sub receiver.
func (f *googleFeed) Subscribe(ctx context.Context, userID uuid.UUID) (service.FeedSubscription, error) {
	return f.hub.Subscribe(ctx, userID)
}

// Close stops receiving and releases Pub/Sub client resources.
func (f *googleFeed) Close() error {
	f.cancel()
	f.wg.Wait()
	f.publisher.Stop()
	_ = f.hub.Close()

	return errors.WithStack(f.client.Close())
}
