// Package constants holds shared domain constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// EventProviderKafka selects the Kafka order-event publisher.
	EventProviderKafka = "kafka"

	// EventProviderLocal selects the local HTTP push publisher used in
	// development.
	EventProviderLocal = "local"
)
