package valuation

import (
	"regexp"
	"strconv"

	"github.com/charmbracelet/log"

	"finreport/pkg/core/extract"
)

// DefaultPeriod is assumed when a report carries no readable accounting
// period. Figures from this year onward skip the inflation adjustment.
const DefaultPeriod = 2024

var yearPattern = regexp.MustCompile(`\d{4}`)

// PeriodValue is a figure together with the accounting year it comes from.
type PeriodValue struct {
	Value *float64 `json:"value"`
	Year  int      `json:"year"`
}

// MultiplesResult is an enterprise value estimate from industry multiples.
// Figures are in thousands of CZK, matching the statements they come from.
type MultiplesResult struct {
	EBIT_Original     PeriodValue `json:"EBIT_original"`
	EBITDA_Original   PeriodValue `json:"EBITDA_original"`
	EBIT_Adjusted     *float64    `json:"EBIT_adjusted_for_2025"`
	EBITDA_Adjusted   *float64    `json:"EBITDA_adjusted_for_2025"`
	EV_EBITDAMultiple float64     `json:"EV_EBITDA_multiple"`
	EV_EBITMultiple   float64     `json:"EV_EBIT_multiple"`
	EV_FromEBITDA     *float64    `json:"enterprise_value_from_EBITDA"`
	EV_FromEBIT       *float64    `json:"enterprise_value_from_EBIT"`
}

// Valuator derives an indicative enterprise value from an extraction result.
type Valuator struct {
	logger *log.Logger
}

func NewValuator(logger *log.Logger) *Valuator {
	if logger == nil {
		logger = log.Default()
	}
	return &Valuator{logger: logger}
}

// CalculateMultiples values the company by applying industry EV multiples to
// its EBIT and EBITDA. Missing inputs degrade the result field by field
// rather than failing the whole valuation: a report without a depreciation
// line still gets an EBIT-based estimate.
func (v *Valuator) CalculateMultiples(data extract.Result) MultiplesResult {
	info := data.Section(extract.SectionInformation)
	income := data.Section(extract.SectionIncomeStatement)

	period := parsePeriod(info["accounting_period"])
	industry, _ := info["industry"].(string)

	ebit := toFloat(income["operating_profit_current"])
	if ebit == nil {
		v.logger.Warn("operating profit missing, EBIT unavailable")
	}

	var ebitda *float64
	if ebit != nil {
		total := *ebit
		if dep := toFloat(income["depreciation_current"]); dep != nil {
			total += *dep
		} else {
			v.logger.Warn("depreciation missing, EBITDA equals EBIT")
		}
		ebitda = &total
	}

	result := MultiplesResult{
		EBIT_Original:   PeriodValue{Value: ebit, Year: period},
		EBITDA_Original: PeriodValue{Value: ebitda, Year: period},
		EBIT_Adjusted:   ebit,
		EBITDA_Adjusted: ebitda,
	}

	if period < DefaultPeriod {
		result.EBIT_Adjusted = adjusted(period, ebit)
		result.EBITDA_Adjusted = adjusted(period, ebitda)
		v.logger.Info("figures adjusted for inflation",
			"from", period, "to", multiplesTargetYear)
	}

	result.EV_EBITDAMultiple, result.EV_EBITMultiple = IndustryMultiples(industry)
	v.logger.Info("industry multiples resolved", "industry", industry,
		"ev_ebitda", result.EV_EBITDAMultiple, "ev_ebit", result.EV_EBITMultiple)

	if result.EBITDA_Adjusted != nil {
		ev := *result.EBITDA_Adjusted * result.EV_EBITDAMultiple
		result.EV_FromEBITDA = &ev
	}
	if result.EBIT_Adjusted != nil {
		ev := *result.EBIT_Adjusted * result.EV_EBITMultiple
		result.EV_FromEBIT = &ev
	}
	return result
}

func adjusted(period int, value *float64) *float64 {
	if value == nil {
		return nil
	}
	adj := AdjustToTargetYear(period, *value)
	return &adj
}

// parsePeriod pulls a four-digit year out of whatever the extraction put in
// accounting_period ("2023", "31.12.2023", 2023.0).
func parsePeriod(raw interface{}) int {
	switch t := raw.(type) {
	case float64:
		if y := int(t); y > 1900 && y < 2200 {
			return y
		}
	case string:
		if m := yearPattern.FindString(t); m != "" {
			if y, err := strconv.Atoi(m); err == nil {
				return y
			}
		}
	}
	return DefaultPeriod
}

// toFloat coerces the numeric shapes JSON decoding can produce. Strings are
// included because models occasionally quote figures despite instructions.
func toFloat(raw interface{}) *float64 {
	switch t := raw.(type) {
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return &f
		}
	}
	return nil
}
