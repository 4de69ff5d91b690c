package domain_test

import (
	"strings"
	"testing"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestServerTopology(t *testing.T) {
	t.Parallel()
	def := domain.ServerTopology("p")

	names := make([]string, 0, len(def.Topics))
	for _, topic := range def.Topics {
		require.Equal(t, "p", topic.Project)
		names = append(names, topic.Name)
	}
	require.Equal(t, []string{"sourceevents", "sourcebroadcast", "agentevents", "agentbroadcast"}, names)

	require.Len(t, def.Subscriptions, 2)
	events := def.Subscriptions[0]
	require.Equal(t, "agentevents-maestro", events.Name)
	require.Equal(t, "agentevents", events.Topic.Name)
	require.Equal(t, `attributes.ce-originalsource="maestro"`, events.Filter)
	require.True(t, events.Filtered())

	broadcast := def.Subscriptions[1]
	require.Equal(t, "agentbroadcast-maestro", broadcast.Name)
	require.Equal(t, "agentbroadcast", broadcast.Topic.Name)
	require.Empty(t, broadcast.Filter)
	require.False(t, broadcast.Filtered())
	require.Equal(t, 6, def.Len())
}

func TestAgentTopology(t *testing.T) {
	t.Parallel()
	def := domain.AgentTopology("p", "cluster-a")

	require.Empty(t, def.Topics)
	require.Len(t, def.Subscriptions, 2)

	events := def.Subscriptions[0]
	require.Equal(t, "sourceevents-cluster-a", events.Name)
	require.Equal(t, "sourceevents", events.Topic.Name)
	require.Equal(t, `attributes.ce-clustername="cluster-a"`, events.Filter)

	broadcast := def.Subscriptions[1]
	require.Equal(t, "sourcebroadcast-cluster-a", broadcast.Name)
	require.Equal(t, "sourcebroadcast", broadcast.Topic.Name)
	require.Empty(t, broadcast.Filter)
}

func TestAgentTopology_Deterministic(t *testing.T) {
	t.Parallel()
	require.Equal(t, domain.AgentTopology("p", "c1"), domain.AgentTopology("p", "c1"))
	require.Equal(t, domain.ServerTopology("p"), domain.ServerTopology("p"))
}

func TestAgentTopology_TopicsDefinedByServer(t *testing.T) {
	t.Parallel()
	server := domain.ServerTopology("p")
	defined := map[domain.Topic]bool{}
	for _, topic := range server.Topics {
		defined[topic] = true
	}
	for _, sub := range append(server.Subscriptions, domain.AgentTopology("p", "c1").Subscriptions...) {
		require.True(t, defined[sub.Topic], "subscription %s references undefined topic %s", sub.Name, sub.Topic.Name)
	}
}

func TestPaths(t *testing.T) {
	t.Parallel()
	require.Equal(t, "projects/p/topics/sourceevents", domain.TopicPath("p", "sourceevents"))
	require.Equal(t, "projects/p/subscriptions/sourceevents-c1", domain.SubscriptionPath("p", "sourceevents-c1"))
	require.Equal(t, "projects/p/topics/t", domain.Topic{Project: "p", Name: "t"}.Path())
	require.Equal(t, "projects/p/subscriptions/s", domain.Subscription{Project: "p", Name: "s"}.Path())
}

func TestAttributeFilter_QuotesValue(t *testing.T) {
	t.Parallel()
	require.Equal(t, `attributes.k="v"`, domain.AttributeFilter("k", "v"))
	require.Equal(t, `attributes.k="a\"b"`, domain.AttributeFilter("k", `a"b`))
}

func TestValidConsumerName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "cluster-a", true},
		{"dots and tildes", "c1.prod~x", true},
		{"single char", "a", true},
		{"empty", "", false},
		{"space", "cluster a", false},
		{"quote", `c"1`, false},
		{"slash", "c/1", false},
		{"too long", strings.Repeat("a", 250), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.ValidConsumerName(tt.input))
		})
	}
}

func TestValidResourceID(t *testing.T) {
	t.Parallel()
	require.True(t, domain.ValidResourceID("sourceevents"))
	require.False(t, domain.ValidResourceID("ab"))
	require.False(t, domain.ValidResourceID("1topic"))
	require.False(t, domain.ValidResourceID("google-topic"))
}
