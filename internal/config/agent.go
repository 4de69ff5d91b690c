package config

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// AgentTopics names the topics an agent publishes to.
type AgentTopics struct {
	AgentEvents    string `json:"agentEvents"`
	AgentBroadcast string `json:"agentBroadcast"`
}

// AgentSubscriptions names the subscriptions an agent receives from.
type AgentSubscriptions struct {
	SourceEvents    string `json:"sourceEvents"`
	SourceBroadcast string `json:"sourceBroadcast"`
}

// AgentBrokerConfig is the Pub/Sub broker config file handed to a maestro agent.
type AgentBrokerConfig struct {
	ProjectID     string             `json:"projectID"`
	Endpoint      string             `json:"endpoint,omitempty"`
	Insecure      bool               `json:"insecure"`
	Topics        AgentTopics        `json:"topics"`
	Subscriptions AgentSubscriptions `json:"subscriptions"`
}

// WriteAgentBrokerConfig stores cfg as indented JSON at path.
func WriteAgentBrokerConfig(path string, cfg AgentBrokerConfig) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal agent broker config: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0644); err != nil {
		return fmt.Errorf("write agent broker config: %w", err)
	}
	return nil
}

// ReadAgentBrokerConfig loads a file written by WriteAgentBrokerConfig.
func ReadAgentBrokerConfig(path string) (AgentBrokerConfig, error) {
	var cfg AgentBrokerConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = json.Unmarshal(b, &cfg)
	return cfg, err
}
