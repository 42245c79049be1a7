// Package constants contains string values shared between config and runtime wiring.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Alert dispatch modes selectable through alerts.mode
const (
	AlertModeSync  = "sync"
	AlertModeAsync = "async"
)

// Alert channel names, persisted on every delivery row
const (
	ChannelX        = "x"
	ChannelTelegram = "telegram"
	ChannelFirebase = "firebase"
)

// RoleAdmin is the only role the API issues tokens for.
const RoleAdmin = "admin"
