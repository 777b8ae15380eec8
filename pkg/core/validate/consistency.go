// Package validate checks extracted statements for internal consistency.
// LLM extraction from OCR text can misread a digit or pick a figure from
// the wrong column; accounting identities catch most of those slips.
package validate

import (
	"fmt"
	"math"

	"finreport/pkg/core/extract"
)

// DefaultTolerance is the allowed relative gap for identity checks. OCR
// sources round to thousands, so exact equality is too strict.
const DefaultTolerance = 0.005

// Check is one identity comparison. Checks whose inputs are missing are not
// emitted at all, so an empty extraction yields an empty, passing report.
type Check struct {
	Name       string  `json:"name"`
	Expected   float64 `json:"expected"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	Passed     bool    `json:"passed"`
}

// Report aggregates all consistency checks for one extraction.
type Report struct {
	Checks       []Check  `json:"checks"`
	AllPassed    bool     `json:"all_passed"`
	FailedChecks []string `json:"failed_checks,omitempty"`

	// TotalAssetsYoYPct is the year-over-year balance sheet growth, when
	// both periods were extracted. Informational, not a pass/fail check.
	TotalAssetsYoYPct *float64 `json:"total_assets_yoy_pct,omitempty"`
}

// Checker runs identity checks with a configurable tolerance.
type Checker struct {
	Tolerance float64
}

func NewChecker() *Checker {
	return &Checker{Tolerance: DefaultTolerance}
}

// CheckResult verifies the accounting identities the extracted figures must
// satisfy: total assets equal total liabilities and equity for both periods,
// and the liabilities-and-equity total decomposes into its two components.
func (c *Checker) CheckResult(data extract.Result) *Report {
	balance := data.Section(extract.SectionBalanceSheet)
	report := &Report{AllPassed: true}

	c.compare(report, "assets_equal_liabilities_equity_current",
		field(balance, "total_assets_current"),
		field(balance, "total_liabilities_equity_current"))
	c.compare(report, "assets_equal_liabilities_equity_previous",
		field(balance, "total_assets_previous"),
		field(balance, "total_liabilities_equity_previous"))

	c.compare(report, "liabilities_equity_decomposition_current",
		field(balance, "total_liabilities_equity_current"),
		sum(field(balance, "equity_current"), field(balance, "liabilities_current")))
	c.compare(report, "liabilities_equity_decomposition_previous",
		field(balance, "total_liabilities_equity_previous"),
		sum(field(balance, "equity_previous"), field(balance, "liabilities_previous")))

	if cur, prev := field(balance, "total_assets_current"), field(balance, "total_assets_previous"); cur != nil && prev != nil && *prev != 0 {
		pct := (*cur - *prev) / *prev * 100
		report.TotalAssetsYoYPct = &pct
	}
	return report
}

// compare records a check when both sides are present. Missing data is an
// extraction gap, not an inconsistency.
func (c *Checker) compare(report *Report, name string, expected, actual *float64) {
	if expected == nil || actual == nil {
		return
	}
	diff := math.Abs(*expected - *actual)
	allowed := c.Tolerance * math.Max(math.Abs(*expected), 1)
	check := Check{
		Name:       name,
		Expected:   *expected,
		Actual:     *actual,
		Difference: diff,
		Passed:     diff <= allowed,
	}
	report.Checks = append(report.Checks, check)
	if !check.Passed {
		report.AllPassed = false
		report.FailedChecks = append(report.FailedChecks,
			fmt.Sprintf("%s: expected %.0f, got %.0f", name, *expected, *actual))
	}
}

func field(section map[string]interface{}, key string) *float64 {
	if v, ok := section[key].(float64); ok {
		return &v
	}
	return nil
}

func sum(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	total := *a + *b
	return &total
}
