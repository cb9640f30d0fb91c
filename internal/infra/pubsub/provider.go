package pubsub

import (
	"context"
	"log/slog"

	"staffportal/config"
	"staffportal/internal/domain/constants"
	"staffportal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// FeedParams holds dependencies for ChangeFeed, injected by Fx
type FeedParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewChangeFeed creates a ChangeFeed based on configuration
func NewChangeFeed(params FeedParams) (service.ChangeFeed, error) {
	cfg := params.Config.Feed
	logger := params.Logger

	if cfg == nil {
		cfg = &config.FeedConfig{Provider: constants.FeedProviderLocal}
	}

	var feed service.ChangeFeed
	var err error

	switch cfg.Provider {
	case "", constants.FeedProviderLocal:
		logger.Info("Using in-process change feed", slog.Int("buffer_size", cfg.BufferSize))

		feed = NewHub(cfg.BufferSize, logger)

	case constants.FeedProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using Redis change feed", slog.String("addr", cfg.Redis.Addr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		feed, err = NewRedisFeed(params.Ctx, client, cfg.Redis.ChannelPrefix, cfg.BufferSize, logger)
		if err != nil {
			_ = client.Close()

			return nil, err
		}

	case constants.FeedProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		if cfg.SubscriptionID == "" {
			return nil, errors.New("subscription ID is required for google provider")
		}

		feed, err = NewGoogleFeed(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.SubscriptionID, cfg.BufferSize, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown feed provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing change feed")

			return feed.Close()
		},
	})

	return feed, nil
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeFeed),
)
