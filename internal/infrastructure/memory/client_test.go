package memory

import (
	"context"
	"testing"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateTopic(t *testing.T) {
	t.Parallel()
	c := NewClient(NewStore())
	ctx := context.Background()

	res, err := c.CreateTopic(ctx, "p", "t")
	require.NoError(t, err)
	require.Equal(t, domain.Created, res)

	res, err = c.CreateTopic(ctx, "p", "t")
	require.NoError(t, err)
	require.Equal(t, domain.AlreadyExists, res)

	// same name, other project
	res, err = c.CreateTopic(ctx, "q", "t")
	require.NoError(t, err)
	require.Equal(t, domain.Created, res)

	require.Equal(t, []string{"projects/p/topics/t", "projects/q/topics/t"}, c.store.Topics())
}

func TestClient_CreateSubscription(t *testing.T) {
	t.Parallel()
	c := NewClient(NewStore())
	ctx := context.Background()

	_, err := c.CreateSubscription(ctx, "p", "s", "t", "")
	require.ErrorIs(t, err, ErrTopicNotFound)

	_, err = c.CreateTopic(ctx, "p", "t")
	require.NoError(t, err)

	res, err := c.CreateSubscription(ctx, "p", "s", "t", `attributes.k="v"`)
	require.NoError(t, err)
	require.Equal(t, domain.Created, res)

	res, err = c.CreateSubscription(ctx, "p", "s", "t", "")
	require.NoError(t, err)
	require.Equal(t, domain.AlreadyExists, res)

	require.Equal(t, map[string]SubscriptionState{
		"projects/p/subscriptions/s": {Topic: "projects/p/topics/t", Filter: `attributes.k="v"`},
	}, c.store.Subscriptions())
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()
	c := NewClient(NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CreateTopic(ctx, "p", "t")
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, c.store.Topics())
}

func TestFactory_SharesStore(t *testing.T) {
	t.Parallel()
	f := NewFactory()
	ctx := context.Background()

	a, err := f.CreateClient(ctx, config.BrokerConfig{ProjectID: "p"})
	require.NoError(t, err)
	b, err := f.CreateClient(ctx, config.BrokerConfig{ProjectID: "p"})
	require.NoError(t, err)

	_, err = a.CreateTopic(ctx, "p", "t")
	require.NoError(t, err)
	res, err := b.CreateTopic(ctx, "p", "t")
	require.NoError(t, err)
	require.Equal(t, domain.AlreadyExists, res)
	require.NoError(t, b.Close())
}
