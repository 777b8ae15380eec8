// Package prompt holds overridable prompt templates. Extraction ships with
// built-in prompts; deployments can replace any of them from JSON files
// without a rebuild, which is how prompt tuning against new report corpora
// is done in practice.
package prompt

import (
	"fmt"
	"sync"
)

// Template is one replaceable prompt. The user prompt uses a literal
// {context} marker for the document context.
type Template struct {
	ID             string `json:"id"`                   // e.g. "extraction.balance_sheet"
	Name           string `json:"name"`
	Description    string `json:"description"`
	SystemPrompt   string `json:"system_prompt"`
	UserPromptTmpl string `json:"user_prompt_template"`
	Version        string `json:"version"`
}

// Library is a thread-safe template collection.
type Library struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

func NewLibrary() *Library {
	return &Library{templates: make(map[string]*Template)}
}

// Register adds or replaces a template.
func (l *Library) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt template has no id")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.templates[t.ID] = t
	return nil
}

// Lookup retrieves a template by ID.
func (l *Library) Lookup(id string) (*Template, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.templates[id]
	return t, ok
}

// Count returns the number of registered templates.
func (l *Library) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.templates)
}
