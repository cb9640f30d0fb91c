// Package constants holds configuration values shared across packages.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Realtime feed providers.
const (
	FeedProviderLocal  = "local"
	FeedProviderRedis  = "redis"
	FeedProviderGoogle = "google"
)
