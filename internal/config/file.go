package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultProjectID is used when no project is configured.
const DefaultProjectID = "maestro-test"

// Environment variables read by FromEnv.
const (
	EnvProjectID    = "PUBSUB_PROJECT_ID"
	EnvEmulatorHost = "PUBSUB_EMULATOR_HOST"
	EnvConsumerName = "CONSUMER_NAME"
	EnvBrokerConfig = "PUBSUB_BROKER_CONFIG"
)

// BrokerConfig holds Pub/Sub connectivity. It shares its keys with the broker
// config file maestro agents read, so JSON files in that format load as-is.
type BrokerConfig struct {
	ProjectID string `yaml:"projectID" json:"projectID"`
	Endpoint  string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Insecure  bool   `yaml:"insecure,omitempty" json:"insecure,omitempty"`
}

// Config is everything a provisioning run needs.
type Config struct {
	Broker         BrokerConfig
	ConsumerName   string
	AgentConfigOut string
	DryRun         bool
}

// HasConsumer reports whether agent subscriptions should be provisioned.
func (c Config) HasConsumer() bool {
	return c.ConsumerName != ""
}

// ReadBrokerConfig loads a broker config file. YAML and JSON are both accepted.
func ReadBrokerConfig(path string) (BrokerConfig, error) {
	var cfg BrokerConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// WriteBrokerConfig stores cfg as YAML.
func WriteBrokerConfig(path string, cfg BrokerConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// FromEnv builds a Config from the environment, starting from base.
// Unset variables leave the corresponding base field untouched.
func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv(EnvProjectID)); v != "" {
		cfg.Broker.ProjectID = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEmulatorHost)); v != "" {
		cfg.Broker.Endpoint = v
		cfg.Broker.Insecure = true
	}
	if v := strings.TrimSpace(os.Getenv(EnvConsumerName)); v != "" {
		cfg.ConsumerName = v
	}
	if cfg.Broker.ProjectID == "" {
		cfg.Broker.ProjectID = DefaultProjectID
	}
	return cfg
}
