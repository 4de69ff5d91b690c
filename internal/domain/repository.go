package domain

import (
	"context"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
)

// ResourceClient creates topics and subscriptions on a pub/sub backend.
// Implementations classify "already exists" into AlreadyExists; any other
// failure is returned as an error.
type ResourceClient interface {
	CreateTopic(ctx context.Context, project, topic string) (CreateResult, error)
	// CreateSubscription creates an unfiltered subscription when filter is empty.
	CreateSubscription(ctx context.Context, project, subscription, topic, filter string) (CreateResult, error)
	Close() error
}

// ClientFactory creates resource clients from broker configuration.
type ClientFactory interface {
	CreateClient(ctx context.Context, cfg config.BrokerConfig) (ResourceClient, error)
}
