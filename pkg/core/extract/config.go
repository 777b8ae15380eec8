package extract

import "finreport/pkg/core/prompt"

// Config carries every tunable of the extraction pipeline. The scoring
// weights were tuned empirically against a corpus of OCR-converted Czech
// annual reports; treat them as fixtures, not values to re-derive.
type Config struct {
	// Context window sizing
	MaxContextChars     int // hard cap on a context window, in runes
	ContextLinesBefore  int // lines kept above a matched heading
	ContextLinesAfter   int // window extent below a match, match line included
	InfoContextLines    int // leading lines fed to company-info extraction
	OverallContextLines int // leading lines fed to document analysis

	// Locator thresholds and scoring weights
	StatementThreshold float64 // income statement and balance sheet
	CashFlowThreshold  float64 // cash flow headings vary more in Czech
	HeadingSimilarity  float64 // pass-1 structural heading acceptance
	ContainedWeight    float64 // down-weight for contained-substring matches
	PrefixGate         float64 // minimum prefix similarity to count at all
	PrefixSlack        int     // extra runes considered beyond keyword length
	ShortLineBoost     float64 // boost for lines barely longer than keyword
	ShortLineSlack     int     // "barely longer" margin, in runes

	// Validator
	IndicatorThreshold float64 // fuzzy gate for cash-flow vocabulary

	// LLM call
	Temperature     float64
	Model           string // optional per-deployment model override
	MinSummaryChars int    // analytical_summary shorter than this is noise

	// Section keyword variants; defaults cover Czech spelling variants,
	// OCR corruptions without diacritics, and English fallbacks.
	Keywords           map[SectionType][]string
	CashFlowIndicators []string

	// Prompts overrides the built-in prompt templates when set. Overrides
	// are looked up as "extraction.<section>".
	Prompts *prompt.Library
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		MaxContextChars:     12000,
		ContextLinesBefore:  2,
		ContextLinesAfter:   45,
		InfoContextLines:    120,
		OverallContextLines: 300,

		StatementThreshold: 0.85,
		CashFlowThreshold:  0.75,
		HeadingSimilarity:  0.95,
		ContainedWeight:    0.98,
		PrefixGate:         0.8,
		PrefixSlack:        5,
		ShortLineBoost:     1.05,
		ShortLineSlack:     20,

		IndicatorThreshold: 0.75,

		Temperature:     0.05,
		MinSummaryChars: 10,

		Keywords:           DefaultKeywords(),
		CashFlowIndicators: DefaultCashFlowIndicators(),
	}
}

// Threshold returns the locator confidence threshold for a section.
func (c Config) Threshold(section SectionType) float64 {
	if section == SectionCashFlow {
		return c.CashFlowThreshold
	}
	return c.StatementThreshold
}
