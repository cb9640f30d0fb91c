package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"feed": map[string]any{
			"subscriptionId": "",
			"redis": map[string]any{
				"channelPrefix": "notifications",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "FEED_SUBSCRIPTIONID", want: "feed.subscriptionId"},
		{envKey: "FEED_REDIS_CHANNELPREFIX", want: "feed.redis.channelPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Feed)
	assert.Equal(t, "local", cfg.Feed.Provider)
	assert.Equal(t, defaultFeedBufferSize, cfg.Feed.BufferSize)
	assert.Equal(t, 25*time.Second, cfg.Feed.KeepAlive)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Notifications)
	assert.Equal(t, "high", cfg.Notifications.PushMinPriority)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Feed:          &FeedConfig{Provider: "redis", BufferSize: 8, KeepAlive: time.Second},
		Notifications: &NotificationsConfig{PushMinPriority: "urgent"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Feed.Provider)
	assert.Equal(t, 8, cfg.Feed.BufferSize)
	assert.Equal(t, time.Second, cfg.Feed.KeepAlive)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "urgent", cfg.Notifications.PushMinPriority)
}
