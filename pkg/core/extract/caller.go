package extract

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"finreport/pkg/core/llm"
	"finreport/pkg/core/utils"
)

// Caller wraps one extraction call: prompt rendering, the provider round
// trip, tolerant JSON parsing, and the all-null sanity check. A nil return
// means the section failed; the orchestrator records an empty mapping and
// moves on.
type Caller struct {
	cfg    Config
	logger *log.Logger
}

func NewCaller(cfg Config, logger *log.Logger) *Caller {
	if logger == nil {
		logger = log.Default()
	}
	return &Caller{cfg: cfg, logger: logger}
}

// Extract renders the section prompt over the context window and asks the
// provider for a JSON object.
func (c *Caller) Extract(ctx context.Context, provider llm.Provider, section SectionType, window string) map[string]interface{} {
	if provider == nil {
		c.logger.Error("cannot extract: no provider configured", "section", section)
		return nil
	}
	if strings.TrimSpace(window) == "" {
		c.logger.Warn("cannot extract: empty context", "section", section)
		return nil
	}
	template, persona := c.resolvePrompt(section)
	if template == "" {
		c.logger.Error("no prompt template", "section", section)
		return nil
	}

	prompt := renderPrompt(template, window)
	options := map[string]interface{}{
		"temperature":     c.cfg.Temperature,
		"response_format": llm.JSONObjectFormat(),
	}
	if c.cfg.Model != "" {
		options["model"] = c.cfg.Model
	}

	raw, err := provider.GenerateResponse(ctx, prompt, persona, options)
	if err != nil {
		c.logger.Error("provider call failed", "section", section, "err", err)
		return nil
	}

	data, err := utils.ParseObject(raw)
	if err != nil {
		c.logger.Error("unparseable model response",
			"section", section, "err", err, "raw", truncateForLog(raw, 500))
		return nil
	}
	if c.allValuesNull(data) {
		c.logger.Warn("model returned only null values, treating as failure",
			"section", section)
		return nil
	}
	return data
}

// resolvePrompt returns the template and system persona for a section,
// preferring a deployed override over the built-in.
func (c *Caller) resolvePrompt(section SectionType) (template, persona string) {
	template, persona = promptFor(section), systemPersona
	if c.cfg.Prompts == nil {
		return template, persona
	}
	if t, ok := c.cfg.Prompts.Lookup("extraction." + string(section)); ok {
		if t.UserPromptTmpl != "" {
			template = t.UserPromptTmpl
		}
		if t.SystemPrompt != "" {
			persona = t.SystemPrompt
		}
	}
	return template, persona
}

// allValuesNull reports whether an extraction carries no usable data. An
// analytical_summary counts only when it is more than a few characters of
// filler; everything else counts unless it is null, empty text, or an empty
// collection.
func (c *Caller) allValuesNull(data map[string]interface{}) bool {
	if len(data) == 0 {
		return true
	}
	meaningfulAnalysis := false
	if s, ok := data["analytical_summary"].(string); ok {
		if len([]rune(strings.TrimSpace(s))) > c.cfg.MinSummaryChars {
			meaningfulAnalysis = true
		}
	}
	for key, value := range data {
		if key == "analytical_summary" {
			continue
		}
		if !isEmptyValue(value) {
			return false
		}
	}
	return !meaningfulAnalysis
}

func isEmptyValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}
	return false
}

func truncateForLog(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
