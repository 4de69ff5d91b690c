// Package domain defines the messaging topology maestro needs on Pub/Sub: the
// topics and subscriptions of the server and of each agent, the outcome of
// creating them, and the ports through which they are created.
package domain

import "fmt"

// Topic is a named Pub/Sub channel scoped to a project.
type Topic struct {
	Project string
	Name    string
}

// Path returns the fully qualified resource name of the topic.
func (t Topic) Path() string {
	return TopicPath(t.Project, t.Name)
}

// Subscription is a delivery endpoint bound to exactly one topic. An empty
// Filter means the subscription receives every message on the topic.
type Subscription struct {
	Project string
	Name    string
	Topic   Topic
	Filter  string
}

// Path returns the fully qualified resource name of the subscription.
func (s Subscription) Path() string {
	return SubscriptionPath(s.Project, s.Name)
}

// Filtered reports whether the subscription carries a filter expression.
func (s Subscription) Filtered() bool {
	return s.Filter != ""
}

// TopicPath builds the projects/{project}/topics/{name} resource name.
func TopicPath(project, name string) string {
	return fmt.Sprintf("projects/%s/topics/%s", project, name)
}

// SubscriptionPath builds the projects/{project}/subscriptions/{name} resource name.
func SubscriptionPath(project, name string) string {
	return fmt.Sprintf("projects/%s/subscriptions/%s", project, name)
}

// AttributeFilter builds an attribute equality predicate of the form
// attributes.<key>="<value>".
func AttributeFilter(key, value string) string {
	return fmt.Sprintf("attributes.%s=%q", key, value)
}
