package domain

import (
	"regexp"
	"strings"
)

// Resource names shared by the maestro server and its agents. Consumers of the
// topology look these up by name, so they must not change.
const (
	SourceEventsTopic    = "sourceevents"
	SourceBroadcastTopic = "sourcebroadcast"
	AgentEventsTopic     = "agentevents"
	AgentBroadcastTopic  = "agentbroadcast"

	ServerConsumer = "maestro"

	OriginalSourceAttribute = "ce-originalsource"
	ClusterNameAttribute    = "ce-clustername"
)

// Definition is the desired topology: topics first, then the subscriptions
// that depend on them. Both sequences are reconciled in order.
type Definition struct {
	Name          string
	Topics        []Topic
	Subscriptions []Subscription
}

// Len returns the number of resources in the definition.
func (d Definition) Len() int {
	return len(d.Topics) + len(d.Subscriptions)
}

// ServerTopology returns the topics and subscriptions used by the maestro server.
func ServerTopology(project string) Definition {
	topic := func(name string) Topic { return Topic{Project: project, Name: name} }

	return Definition{
		Name: "server",
		Topics: []Topic{
			topic(SourceEventsTopic),
			topic(SourceBroadcastTopic),
			topic(AgentEventsTopic),
			topic(AgentBroadcastTopic),
		},
		Subscriptions: []Subscription{
			{
				Project: project,
				Name:    AgentEventsTopic + "-" + ServerConsumer,
				Topic:   topic(AgentEventsTopic),
				Filter:  AttributeFilter(OriginalSourceAttribute, ServerConsumer),
			},
			{
				Project: project,
				Name:    AgentBroadcastTopic + "-" + ServerConsumer,
				Topic:   topic(AgentBroadcastTopic),
			},
		},
	}
}

// AgentTopology returns the per-agent subscriptions for consumerName. It adds
// no topics; the source topics come from ServerTopology.
func AgentTopology(project, consumerName string) Definition {
	return Definition{
		Name: "agent",
		Subscriptions: []Subscription{
			{
				Project: project,
				Name:    SourceEventsSubscription(consumerName),
				Topic:   Topic{Project: project, Name: SourceEventsTopic},
				Filter:  AttributeFilter(ClusterNameAttribute, consumerName),
			},
			{
				Project: project,
				Name:    SourceBroadcastSubscription(consumerName),
				Topic:   Topic{Project: project, Name: SourceBroadcastTopic},
			},
		},
	}
}

// SourceEventsSubscription is the name of the filtered per-agent subscription.
func SourceEventsSubscription(consumerName string) string {
	return SourceEventsTopic + "-" + consumerName
}

// SourceBroadcastSubscription is the name of the per-agent broadcast subscription.
func SourceBroadcastSubscription(consumerName string) string {
	return SourceBroadcastTopic + "-" + consumerName
}

var resourceIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\-_.~+%]{2,254}$`)

// ValidResourceID reports whether id is acceptable as a Pub/Sub topic or
// subscription id.
func ValidResourceID(id string) bool {
	return resourceIDPattern.MatchString(id) && !strings.HasPrefix(strings.ToLower(id), "goog")
}

// ValidConsumerName reports whether every subscription id derived from name is
// a valid Pub/Sub id. Names are never rewritten to make them fit.
func ValidConsumerName(name string) bool {
	if name == "" {
		return false
	}
	return ValidResourceID(SourceEventsSubscription(name)) && ValidResourceID(SourceBroadcastSubscription(name))
}
