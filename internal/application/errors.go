package application

import "errors"

var (
	// ErrServerTopology is returned when the server topology could not be reconciled
	ErrServerTopology = errors.New("server topology provisioning failed")

	// ErrAgentTopology is returned when the agent subscriptions could not be reconciled
	ErrAgentTopology = errors.New("agent topology provisioning failed")

	// ErrInvalidProjectID is returned when no project id is configured
	ErrInvalidProjectID = errors.New("invalid project id")

	// ErrInvalidConsumerName is returned when the consumer name cannot form valid subscription ids
	ErrInvalidConsumerName = errors.New("invalid consumer name")
)
