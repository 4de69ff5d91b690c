package gcp

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
)

const createTimeout = 30 * time.Second

// Client implements domain.ResourceClient on the Pub/Sub admin API.
type Client struct {
	client *pubsub.Client
	config config.BrokerConfig
}

// NewClient dials Pub/Sub for cfg.ProjectID. A configured endpoint replaces
// the default one; Insecure drops authentication and TLS, which is what the
// emulator expects.
func NewClient(ctx context.Context, cfg config.BrokerConfig, extra ...option.ClientOption) (*Client, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID, append(clientOptions(cfg), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	return &Client{client: client, config: cfg}, nil
}

func clientOptions(cfg config.BrokerConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts,
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}
	return opts
}

// CreateTopic creates projects/{project}/topics/{topic}.
func (c *Client) CreateTopic(ctx context.Context, project, topic string) (domain.CreateResult, error) {
	cctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	_, err := c.client.TopicAdminClient.CreateTopic(cctx, &pubsubpb.Topic{
		Name: domain.TopicPath(project, topic),
	})
	return result(err)
}

// CreateSubscription creates projects/{project}/subscriptions/{subscription}
// on the given topic. The filter is only sent when non-empty.
func (c *Client) CreateSubscription(ctx context.Context, project, subscription, topic, filter string) (domain.CreateResult, error) {
	cctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	sub := &pubsubpb.Subscription{
		Name:  domain.SubscriptionPath(project, subscription),
		Topic: domain.TopicPath(project, topic),
	}
	if filter != "" {
		sub.Filter = filter
	}

	_, err := c.client.SubscriptionAdminClient.CreateSubscription(cctx, sub)
	return result(err)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func result(err error) (domain.CreateResult, error) {
	if err == nil {
		return domain.Created, nil
	}
	if IsAlreadyExistsErr(err) {
		return domain.AlreadyExists, nil
	}
	return domain.Created, err
}

// IsAlreadyExistsErr returns whether the error status code is AlreadyExists.
func IsAlreadyExistsErr(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
