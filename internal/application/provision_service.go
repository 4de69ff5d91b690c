package application

import (
	"context"
	"fmt"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/utils"
)

// ProvisionResult holds the reports of a provisioning run. Agent is nil when
// no consumer was configured or the server phase failed.
type ProvisionResult struct {
	Server *domain.Report
	Agent  *domain.Report
}

// ProvisionService reconciles the server topology and, for a named consumer,
// the agent subscriptions.
type ProvisionService struct {
	factory domain.ClientFactory
}

// NewProvisionService creates a new provisioning service.
func NewProvisionService(factory domain.ClientFactory) *ProvisionService {
	return &ProvisionService{factory: factory}
}

// Validate checks the inputs of a provisioning run.
func Validate(cfg config.Config) error {
	if cfg.Broker.ProjectID == "" {
		return ErrInvalidProjectID
	}
	if cfg.HasConsumer() && !domain.ValidConsumerName(cfg.ConsumerName) {
		return fmt.Errorf("%w: %q", ErrInvalidConsumerName, cfg.ConsumerName)
	}
	return nil
}

// Provision runs the server phase and then, if a consumer name is set, the
// agent phase. A failed server phase skips the agent phase. Phase failures
// wrap ErrServerTopology or ErrAgentTopology together with the resource error.
func (s *ProvisionService) Provision(ctx context.Context, cfg config.Config) (*ProvisionResult, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	client, err := s.factory.CreateClient(ctx, cfg.Broker)
	if err != nil {
		utils.Logger.Error("create resource client failed", "project", cfg.Broker.ProjectID, "err", err)
		return nil, err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			utils.Logger.Warn("close resource client failed", "err", cerr)
		}
	}()

	reconciler := NewReconciler(client)
	result := &ProvisionResult{}
	project := cfg.Broker.ProjectID

	utils.Logger.Info("provisioning server topology", "project", project)
	result.Server = reconciler.Reconcile(ctx, domain.ServerTopology(project))
	if !result.Server.AllOK() {
		return result, fmt.Errorf("%w: %w", ErrServerTopology, result.Server.Err())
	}

	if !cfg.HasConsumer() {
		utils.Logger.Info("no consumer configured, skipping agent subscriptions")
		return result, nil
	}

	utils.Logger.Info("provisioning agent subscriptions", "project", project, "consumer", cfg.ConsumerName)
	result.Agent = reconciler.Reconcile(ctx, domain.AgentTopology(project, cfg.ConsumerName))
	if !result.Agent.AllOK() {
		return result, fmt.Errorf("%w: %w", ErrAgentTopology, result.Agent.Err())
	}

	if cfg.AgentConfigOut != "" && cfg.DryRun {
		utils.Logger.Info("dry run, not writing agent broker config", "path", cfg.AgentConfigOut)
	} else if cfg.AgentConfigOut != "" {
		if err := config.WriteAgentBrokerConfig(cfg.AgentConfigOut, AgentBrokerConfig(cfg.Broker, cfg.ConsumerName)); err != nil {
			utils.Logger.Error("write agent broker config failed", "path", cfg.AgentConfigOut, "err", err)
			return result, err
		}
		utils.Logger.Info("agent broker config written", "path", cfg.AgentConfigOut, "consumer", cfg.ConsumerName)
	}

	return result, nil
}

// AgentBrokerConfig describes the resources an agent named consumerName uses.
func AgentBrokerConfig(broker config.BrokerConfig, consumerName string) config.AgentBrokerConfig {
	p := broker.ProjectID
	return config.AgentBrokerConfig{
		ProjectID: p,
		Endpoint:  broker.Endpoint,
		Insecure:  broker.Insecure,
		Topics: config.AgentTopics{
			AgentEvents:    domain.TopicPath(p, domain.AgentEventsTopic),
			AgentBroadcast: domain.TopicPath(p, domain.AgentBroadcastTopic),
		},
		Subscriptions: config.AgentSubscriptions{
			SourceEvents:    domain.SubscriptionPath(p, domain.SourceEventsSubscription(consumerName)),
			SourceBroadcast: domain.SubscriptionPath(p, domain.SourceBroadcastSubscription(consumerName)),
		},
	}
}
