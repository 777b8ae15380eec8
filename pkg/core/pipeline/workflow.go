// Package pipeline wires the processing stages end to end: normalize the
// report HTML, extract structured data, value the company, render the
// report. Each run gets an ID so log lines from concurrent runs can be told
// apart.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"finreport/pkg/core/extract"
	"finreport/pkg/core/report"
	"finreport/pkg/core/utils"
	"finreport/pkg/core/validate"
	"finreport/pkg/core/valuation"
)

// Result bundles everything one run produced. Extraction gaps flow through
// as empty sections and N/A report cells; a Result is only absent when the
// input itself was unusable.
type Result struct {
	RunID          string                    `json:"run_id"`
	StartedAt      time.Time                 `json:"started_at"`
	Duration       time.Duration             `json:"duration"`
	Data           extract.Result            `json:"data"`
	Consistency    *validate.Report          `json:"consistency"`
	Valuation      valuation.MultiplesResult `json:"valuation"`
	ReportMarkdown string                    `json:"report_markdown"`
	ReportHTML     string                    `json:"report_html"`
}

// Workflow runs the full analysis for one report.
type Workflow struct {
	cfg      extract.Config
	resolver extract.ProviderResolver
	logger   *log.Logger
}

func NewWorkflow(cfg extract.Config, resolver extract.ProviderResolver, logger *log.Logger) *Workflow {
	if logger == nil {
		logger = log.Default()
	}
	return &Workflow{cfg: cfg, resolver: resolver, logger: logger}
}

// Run processes one report through all stages. The returned error is
// non-nil only when the HTML is unusable; every downstream stage degrades
// instead of failing.
func (w *Workflow) Run(ctx context.Context, htmlContent string) (*Result, error) {
	runID := uuid.NewString()
	started := time.Now()
	logger := w.logger.With("run_id", runID)
	logger.Info("run started")

	extractor := extract.NewExtractor(w.cfg, w.resolver, logger)
	data, err := extractor.ExtractFromHTML(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for run %s: %w", runID, err)
	}

	consistency := validate.NewChecker().CheckResult(data)
	if !consistency.AllPassed {
		logger.Warn("extracted figures fail consistency checks",
			"failed", consistency.FailedChecks)
	}

	val := valuation.NewValuator(logger).CalculateMultiples(data)

	builder := report.NewBuilder(w.resolver.Provider("synthesis"), logger)
	markdown := builder.BuildMarkdown(ctx, data, val)
	html, err := utils.RenderHTML(markdown)
	if err != nil {
		logger.Error("HTML rendering failed, report available as Markdown only", "err", err)
		html = ""
	}

	result := &Result{
		RunID:          runID,
		StartedAt:      started,
		Duration:       time.Since(started),
		Data:           data,
		Consistency:    consistency,
		Valuation:      val,
		ReportMarkdown: markdown,
		ReportHTML:     html,
	}
	logger.Info("run finished", "duration", result.Duration)
	return result, nil
}
