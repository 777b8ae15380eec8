package extract

import (
	"regexp"
	"strings"

	"finreport/pkg/core/fuzzy"
)

var digitRun = regexp.MustCompile(`\d{3,}`)

// ValidateContext decides whether a context window plausibly contains the
// financial statement it was located for. Every statement must carry at
// least one run of three or more digits; a table of thousands of CZK cannot
// avoid one. Cash-flow contexts additionally need cash-flow vocabulary,
// because their lower locator threshold lets prose paragraphs through.
func ValidateContext(window string, section SectionType, cfg Config) bool {
	if strings.TrimSpace(window) == "" {
		return false
	}
	if !digitRun.MatchString(window) {
		return false
	}
	if section != SectionCashFlow {
		return true
	}
	return containsIndicator(window, cfg.CashFlowIndicators, cfg.IndicatorThreshold)
}

// containsIndicator reports whether any line of the window matches one of
// the vocabulary indicators, verbatim or fuzzily. Indicators that clean to
// almost nothing are skipped so a stray "z" cannot validate a window.
func containsIndicator(window string, indicators []string, threshold float64) bool {
	lines := strings.Split(window, "\n")
	for _, ind := range indicators {
		ci := cleanText(ind)
		if len([]rune(ci)) <= 5 {
			continue
		}
		for _, line := range lines {
			cl := cleanText(line)
			if cl == "" {
				continue
			}
			if strings.Contains(cl, ci) {
				return true
			}
			if fuzzy.Ratio(cl, ci) > threshold {
				return true
			}
		}
	}
	return false
}
