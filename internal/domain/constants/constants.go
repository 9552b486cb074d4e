// Package constants holds shared environment and provider identifiers.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub for event delivery.
	PubSubProviderGoogle = "google"

	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
)
