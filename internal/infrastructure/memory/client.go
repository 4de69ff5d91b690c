// Package memory provides an in-process resource client that keeps topics and
// subscriptions in maps. It backs dry runs and tests that need a remote state
// surviving several reconciliations.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
)

// ErrTopicNotFound is returned when a subscription references a missing topic.
var ErrTopicNotFound = errors.New("topic not found")

// SubscriptionState is what the store remembers about a subscription.
type SubscriptionState struct {
	Topic  string
	Filter string
}

// Store is the shared remote state. Clients created from the same store see
// each other's resources.
type Store struct {
	mu            sync.Mutex
	topics        map[string]struct{}
	subscriptions map[string]SubscriptionState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		topics:        map[string]struct{}{},
		subscriptions: map[string]SubscriptionState{},
	}
}

// Topics returns the topic paths in the store, sorted.
func (s *Store) Topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.topics))
	for p := range s.topics {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Subscriptions returns a copy of the stored subscriptions keyed by path.
func (s *Store) Subscriptions() map[string]SubscriptionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]SubscriptionState, len(s.subscriptions))
	for k, v := range s.subscriptions {
		out[k] = v
	}
	return out
}

// Client implements domain.ResourceClient against a Store.
type Client struct {
	store *Store
}

// NewClient creates a client over store.
func NewClient(store *Store) *Client {
	return &Client{store: store}
}

// CreateTopic records the topic unless it is already present.
func (c *Client) CreateTopic(ctx context.Context, project, topic string) (domain.CreateResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Created, err
	}
	path := domain.TopicPath(project, topic)

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if _, ok := c.store.topics[path]; ok {
		return domain.AlreadyExists, nil
	}
	c.store.topics[path] = struct{}{}
	return domain.Created, nil
}

// CreateSubscription records the subscription unless it is already present.
// The topic must exist.
func (c *Client) CreateSubscription(ctx context.Context, project, subscription, topic, filter string) (domain.CreateResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Created, err
	}
	path := domain.SubscriptionPath(project, subscription)
	topicPath := domain.TopicPath(project, topic)

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if _, ok := c.store.subscriptions[path]; ok {
		return domain.AlreadyExists, nil
	}
	if _, ok := c.store.topics[topicPath]; !ok {
		return domain.Created, fmt.Errorf("%w: %s", ErrTopicNotFound, topicPath)
	}
	c.store.subscriptions[path] = SubscriptionState{Topic: topicPath, Filter: filter}
	return domain.Created, nil
}

// Close is a no-op.
func (c *Client) Close() error { return nil }

// Factory hands out clients sharing one store.
type Factory struct {
	Store *Store
}

// NewFactory creates a factory over a fresh store.
func NewFactory() *Factory {
	return &Factory{Store: NewStore()}
}

// CreateClient ignores cfg; every client shares the factory's store.
func (f *Factory) CreateClient(_ context.Context, _ config.BrokerConfig) (domain.ResourceClient, error) {
	return NewClient(f.Store), nil
}
