package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"finreport/pkg/core/document"
	"finreport/pkg/core/llm"
)

// ProviderResolver selects the LLM provider for an extraction stage. The
// agent.Manager satisfies it; tests plug in stubs.
type ProviderResolver interface {
	Provider(stage string) llm.Provider
}

// staticResolver serves one provider for every stage.
type staticResolver struct{ p llm.Provider }

func (r staticResolver) Provider(string) llm.Provider { return r.p }

// Extractor runs the full extraction sequence over one report: company
// information from the document head, the three financial statements via
// fuzzy section location, then the qualitative document analysis.
type Extractor struct {
	cfg        Config
	resolver   ProviderResolver
	normalizer *document.Normalizer
	locator    *Locator
	caller     *Caller
	logger     *log.Logger
}

// NewExtractor builds an extractor that resolves providers per stage.
func NewExtractor(cfg Config, resolver ProviderResolver, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{
		cfg:        cfg,
		resolver:   resolver,
		normalizer: document.NewNormalizer(logger),
		locator:    NewLocator(cfg, logger),
		caller:     NewCaller(cfg, logger),
		logger:     logger,
	}
}

// NewExtractorWithProvider builds an extractor backed by a single provider
// for all stages.
func NewExtractorWithProvider(cfg Config, provider llm.Provider, logger *log.Logger) *Extractor {
	return NewExtractor(cfg, staticResolver{p: provider}, logger)
}

// ExtractFromHTML extracts structured data and qualitative insights from an
// OCR-derived HTML report. The result always carries all five section keys;
// a section that could not be located or extracted holds an empty mapping.
// The only error condition is empty input.
func (e *Extractor) ExtractFromHTML(ctx context.Context, htmlContent string) (Result, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return NewResult(), fmt.Errorf("empty HTML content")
	}

	e.logger.Info("starting financial data extraction")
	result := NewResult()

	lines := e.normalizer.Normalize(htmlContent)
	e.logger.Info("document normalized", "lines", len(lines))

	e.runSection(ctx, result, SectionInformation, func() string {
		return e.locator.LeadingLines(lines, e.cfg.InfoContextLines, e.cfg.MaxContextChars)
	})

	for _, section := range []SectionType{SectionIncomeStatement, SectionBalanceSheet, SectionCashFlow} {
		e.runSection(ctx, result, section, func() string {
			window := e.locator.Locate(lines, section)
			if window == nil {
				return ""
			}
			return window.Text
		})
	}

	e.runSection(ctx, result, SectionDocumentAnalysis, func() string {
		limit := e.cfg.MaxContextChars + e.cfg.MaxContextChars/2
		return e.locator.LeadingLines(lines, e.cfg.OverallContextLines, limit)
	})

	e.logger.Info("extraction completed")
	return result, nil
}

// runSection executes one stage and records its outcome. A panic inside a
// stage is confined to that stage; the section keeps its empty mapping and
// the sequence continues.
func (e *Extractor) runSection(ctx context.Context, result Result, section SectionType, contextFn func() string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("section extraction panicked",
				"section", section, "panic", r)
			result[string(section)] = map[string]interface{}{}
		}
	}()

	window := contextFn()
	if strings.TrimSpace(window) == "" {
		e.logger.Warn("no context for section, storing empty result", "section", section)
		return
	}

	provider := e.resolver.Provider(string(section))
	data := e.caller.Extract(ctx, provider, section, window)
	if data == nil {
		e.logger.Warn("extraction failed for section, storing empty result", "section", section)
		return
	}
	result[string(section)] = data
	e.logger.Info("section extracted", "section", section, "fields", len(data))
}
