package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// StripCodeFences removes markdown code fences and any conversational text
// surrounding the first JSON object in an LLM response.
func StripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}
	return cleaned
}

// RepairJSON attempts to fix common JSON errors in LLM outputs: missing
// quotes around keys, single quotes, unclosed brackets, trailing commas.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseObject extracts a single JSON object from raw LLM output.
// Parsing strategies are tried in order of strictness:
//  1. Standard JSON after fence stripping
//  2. JSON repair
//  3. Hjson (most lenient)
//
// Returns an error when no strategy yields a JSON object.
func ParseObject(raw string) (map[string]interface{}, error) {
	cleaned := StripCodeFences(raw)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &obj); err == nil {
		return obj, nil
	}

	if repaired, err := RepairJSON(cleaned); err == nil {
		if err := json.Unmarshal([]byte(repaired), &obj); err == nil {
			return obj, nil
		}
	}

	var lenient interface{}
	if err := hjson.Unmarshal([]byte(cleaned), &lenient); err == nil {
		if m, ok := lenient.(map[string]interface{}); ok {
			return m, nil
		}
	}

	return nil, fmt.Errorf("response is not a JSON object")
}

// DecodeSection converts a loose section mapping into a typed record by
// round-tripping through JSON. Unknown keys are dropped; type mismatches on
// individual fields surface as an error.
func DecodeSection(section map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("failed to encode section: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("section does not match record schema: %w", err)
	}
	return nil
}
