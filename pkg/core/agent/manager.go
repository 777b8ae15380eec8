// Package agent resolves which LLM provider backs each extraction stage.
// Providers are declared in YAML so a deployment can move a single stage
// (say, document analysis) to a different backend without code changes.
package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"finreport/pkg/core/llm"
)

// Config is the provider section of the YAML config file.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Model          string                 `yaml:"model"`
	Stages         map[string]StageConfig `yaml:"stages"`

	// Keywords replaces the built-in heading variants for a statement
	// section (income_statement, balance_sheet, cash_flow). Deployments
	// add variants here when a new report corpus uses headings the
	// defaults miss.
	Keywords map[string][]string `yaml:"keywords"`
}

// StageConfig overrides the provider or model for one extraction stage
// (information, income_statement, balance_sheet, cash_flow, document_analysis).
type StageConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// LoadConfig reads a YAML config file. A missing file is not an error: the
// zero Config resolves to the default provider.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Manager resolves stage names to provider instances, applying per-stage
// overrides from the config.
type Manager struct {
	config Config
}

func NewManager(config Config) *Manager {
	return &Manager{config: config}
}

// Provider returns the provider for a stage, falling back to the globally
// active provider, then to OpenAI (the reference extraction backend).
func (m *Manager) Provider(stage string) llm.Provider {
	name := m.config.ActiveProvider
	model := m.config.Model
	if sc, ok := m.config.Stages[stage]; ok {
		if sc.Provider != "" {
			name = sc.Provider
		}
		if sc.Model != "" {
			model = sc.Model
		}
	}
	if p := newProvider(name, model); p != nil {
		return p
	}
	return &llm.OpenAIProvider{Model: model}
}

// ProviderByName builds a provider by name with the global model, or nil
// when the name is unknown.
func (m *Manager) ProviderByName(name string) llm.Provider {
	return newProvider(name, m.config.Model)
}

func newProvider(name, model string) llm.Provider {
	switch name {
	case "openai":
		return &llm.OpenAIProvider{Model: model}
	case "gemini":
		return &llm.GeminiProvider{Model: model}
	case "deepseek":
		return &llm.DeepSeekProvider{Model: model}
	}
	return nil
}
