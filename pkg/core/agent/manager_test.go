package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finreport/pkg/core/llm"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	yaml := `active_provider: gemini
model: gemini-2.0-flash
stages:
  cash_flow:
    provider: openai
    model: gpt-4o
  document_analysis:
    model: gemini-2.5-pro
keywords:
  cash_flow:
    - "přehled o peněžních tocích"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.ActiveProvider)
	assert.Equal(t, "openai", cfg.Stages["cash_flow"].Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.Stages["document_analysis"].Model)
	assert.Equal(t, []string{"přehled o peněžních tocích"}, cfg.Keywords["cash_flow"])
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.ActiveProvider)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":bad"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestProviderStageResolution(t *testing.T) {
	m := NewManager(Config{
		ActiveProvider: "gemini",
		Model:          "gemini-2.0-flash",
		Stages: map[string]StageConfig{
			"cash_flow":         {Provider: "openai", Model: "gpt-4o"},
			"document_analysis": {Model: "gemini-2.5-pro"},
		},
	})

	cf, ok := m.Provider("cash_flow").(*llm.OpenAIProvider)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", cf.Model)

	da, ok := m.Provider("document_analysis").(*llm.GeminiProvider)
	require.True(t, ok)
	assert.Equal(t, "gemini-2.5-pro", da.Model)

	// unconfigured stage falls back to the active provider
	_, ok = m.Provider("income_statement").(*llm.GeminiProvider)
	assert.True(t, ok)
}

func TestProviderFallsBackToOpenAI(t *testing.T) {
	m := NewManager(Config{})
	_, ok := m.Provider("information").(*llm.OpenAIProvider)
	assert.True(t, ok)

	m = NewManager(Config{ActiveProvider: "unknown"})
	_, ok = m.Provider("information").(*llm.OpenAIProvider)
	assert.True(t, ok)
}

func TestProviderByName(t *testing.T) {
	m := NewManager(Config{Model: "x"})
	assert.NotNil(t, m.ProviderByName("deepseek"))
	assert.Nil(t, m.ProviderByName("mistral"))
}
