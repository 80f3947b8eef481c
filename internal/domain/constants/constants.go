// Package constants collects configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store providers
const (
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
)

// Auth providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// Pub/Sub message attributes
const (
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)
