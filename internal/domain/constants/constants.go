// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Backplane providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Database drivers
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)
