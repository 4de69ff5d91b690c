package gcp

import (
	"context"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
)

// Factory creates Pub/Sub resource clients from configuration.
type Factory struct{}

// NewFactory creates a new client factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateClient creates a new Pub/Sub resource client from configuration.
func (f *Factory) CreateClient(ctx context.Context, cfg config.BrokerConfig) (domain.ResourceClient, error) {
	return NewClient(ctx, cfg)
}
