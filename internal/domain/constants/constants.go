// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
