// Package constants holds string identifiers shared by config and wiring code.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Alert rate limiter backends.
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Event types carried on the alert topic.
const (
	EventTypeSightingCreated = "sighting.created"
	EventTypeEscalation      = "sighting.escalated"
)

// Scopes granted to internal service tokens.
const (
	ScopeAlertsDispatch = "alerts:dispatch"
	ScopeAlertsRead     = "alerts:read"
	ScopeDevicesWrite   = "devices:write"
)
