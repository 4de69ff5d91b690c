package testutil

import (
	"context"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
)

// Call records one create call made against FakeResourceClient.
type Call struct {
	Kind    domain.ResourceKind
	Project string
	Name    string
	Topic   string
	Filter  string
}

// FakeResourceClient is a test double implementing domain.ResourceClient.
// Resources it creates become "existing" for later calls; errors can be
// scripted per resource.
type FakeResourceClient struct {
	Calls    []Call
	Existing map[string]bool
	Errs     map[string]error
	Closed   bool
	CloseErr error
}

func NewFakeResourceClient() *FakeResourceClient {
	return &FakeResourceClient{Existing: map[string]bool{}, Errs: map[string]error{}}
}

func key(kind domain.ResourceKind, name string) string { return string(kind) + "/" + name }

// FailOn makes the create call for the named resource return err.
func (f *FakeResourceClient) FailOn(kind domain.ResourceKind, name string, err error) {
	f.Errs[key(kind, name)] = err
}

// MarkExisting makes the named resource report AlreadyExists.
func (f *FakeResourceClient) MarkExisting(kind domain.ResourceKind, name string) {
	f.Existing[key(kind, name)] = true
}

func (f *FakeResourceClient) CreateTopic(_ context.Context, project, topic string) (domain.CreateResult, error) {
	f.Calls = append(f.Calls, Call{Kind: domain.KindTopic, Project: project, Name: topic})
	return f.create(domain.KindTopic, topic)
}

func (f *FakeResourceClient) CreateSubscription(_ context.Context, project, subscription, topic, filter string) (domain.CreateResult, error) {
	f.Calls = append(f.Calls, Call{Kind: domain.KindSubscription, Project: project, Name: subscription, Topic: topic, Filter: filter})
	return f.create(domain.KindSubscription, subscription)
}

func (f *FakeResourceClient) create(kind domain.ResourceKind, name string) (domain.CreateResult, error) {
	k := key(kind, name)
	if err, ok := f.Errs[k]; ok {
		return domain.Created, err
	}
	if f.Existing[k] {
		return domain.AlreadyExists, nil
	}
	f.Existing[k] = true
	return domain.Created, nil
}

func (f *FakeResourceClient) Close() error {
	f.Closed = true
	return f.CloseErr
}

// Names returns the resource names of the recorded calls in order.
func (f *FakeResourceClient) Names() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.Name)
	}
	return out
}

// FakeFactory returns the configured client for any config.
type FakeFactory struct {
	Client  domain.ResourceClient
	Err     error
	Configs []config.BrokerConfig
}

func (f *FakeFactory) CreateClient(_ context.Context, cfg config.BrokerConfig) (domain.ResourceClient, error) {
	f.Configs = append(f.Configs, cfg)
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Client != nil {
		return f.Client, nil
	}
	return NewFakeResourceClient(), nil
}
