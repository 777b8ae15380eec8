// Package llm defines the completion-provider boundary the extraction core
// depends on, plus concrete providers. The core only needs one capability:
// send a system+user prompt, get raw text back. Whether that text is really
// the JSON object we asked for is the caller's problem.
package llm

import "context"

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// JSONObjectFormat is the options value requesting a JSON-object response.
func JSONObjectFormat() map[string]interface{} {
	return map[string]interface{}{"type": "json_object"}
}

func optString(options map[string]interface{}, key, fallback string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func optFloat(options map[string]interface{}, key string, fallback float64) float64 {
	switch v := options[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return fallback
}

func wantsJSON(options map[string]interface{}) bool {
	rf, ok := options["response_format"].(map[string]interface{})
	return ok && rf["type"] == "json_object"
}
