// Package cmd wires configuration, the resource client factory and the
// provisioning service into the pubsub-bootstrap command.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/application"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/config"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/infrastructure/gcp"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/infrastructure/memory"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/utils"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type options struct {
	configPath     string
	projectID      string
	endpoint       string
	insecure       bool
	consumerName   string
	agentConfigOut string
	dryRun         bool
	logLevel       string
}

// LoadConfig builds the run configuration from, in increasing precedence, the
// broker config file, the environment and explicitly set flags.
func LoadConfig(args []string) (config.Config, error) {
	var o options
	fs := pflag.NewFlagSet("pubsub-bootstrap", pflag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", os.Getenv(config.EnvBrokerConfig), "Pub/Sub broker config file (YAML or JSON)")
	fs.StringVar(&o.projectID, "project", "", "GCP project id (default "+config.DefaultProjectID+")")
	fs.StringVar(&o.endpoint, "endpoint", "", "Pub/Sub endpoint, e.g. an emulator host")
	fs.BoolVar(&o.insecure, "insecure", false, "Disable authentication and TLS")
	fs.StringVar(&o.consumerName, "consumer", "", "Agent consumer name; empty provisions the server topology only")
	fs.StringVar(&o.agentConfigOut, "agent-config-out", "", "Write the agent broker config to this path")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Reconcile against an in-memory state instead of Pub/Sub")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	var base config.Config
	if o.configPath != "" {
		broker, err := config.ReadBrokerConfig(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		base.Broker = broker
	}
	cfg := config.FromEnv(base)

	if fs.Changed("project") {
		cfg.Broker.ProjectID = o.projectID
	}
	if fs.Changed("endpoint") {
		cfg.Broker.Endpoint = o.endpoint
	}
	if fs.Changed("insecure") {
		cfg.Broker.Insecure = o.insecure
	}
	if fs.Changed("consumer") {
		cfg.ConsumerName = o.consumerName
	}
	cfg.AgentConfigOut = o.agentConfigOut
	cfg.DryRun = o.dryRun
	if o.logLevel != "" {
		utils.SetLogLevel(o.logLevel)
	}
	return cfg, nil
}

// Run provisions the topology and returns the process exit code.
func Run(args []string) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		utils.Logger.Error("invalid arguments", "err", err)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Provision(ctx, cfg, factoryFor(cfg))
}

// Provision runs the provisioning service and maps its outcome to an exit code.
func Provision(ctx context.Context, cfg config.Config, factory domain.ClientFactory) int {
	utils.Logger.Info("initializing pub/sub topology",
		"project", cfg.Broker.ProjectID,
		"endpoint", cfg.Broker.Endpoint,
		"consumer", cfg.ConsumerName,
		"dry_run", cfg.DryRun,
	)

	_, err := application.NewProvisionService(factory).Provision(ctx, cfg)
	switch {
	case err == nil:
		utils.Logger.Info("pub/sub topology initialized")
		return ExitOK
	case errors.Is(err, application.ErrInvalidProjectID), errors.Is(err, application.ErrInvalidConsumerName):
		utils.Logger.Error("invalid configuration", "err", err)
		return ExitUsage
	case errors.Is(err, application.ErrServerTopology):
		utils.Logger.Error("failed to initialize server topics and subscriptions", "err", err)
	case errors.Is(err, application.ErrAgentTopology):
		utils.Logger.Error("failed to initialize agent subscriptions", "consumer", cfg.ConsumerName, "err", err)
	default:
		utils.Logger.Error("provisioning failed", "err", err)
	}
	return ExitFailure
}

func factoryFor(cfg config.Config) domain.ClientFactory {
	if cfg.DryRun {
		return memory.NewFactory()
	}
	return gcp.NewFactory()
}
