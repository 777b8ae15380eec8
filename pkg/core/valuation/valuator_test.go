package valuation

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finreport/pkg/core/extract"
)

func TestIndustryMultiplesExactRow(t *testing.T) {
	ebitda, ebit := IndustryMultiples("Machinery")
	assert.Equal(t, 12.80, ebitda)
	assert.Equal(t, 16.16, ebit)
}

func TestIndustryMultiplesLooseLabel(t *testing.T) {
	// a verbose LLM label still lands on a table row
	ebitda, ebit := IndustryMultiples("software (internet)")
	assert.Equal(t, 10.62, ebitda)
	assert.Equal(t, 21.61, ebit)

	// row name contained in the query
	ebitda, _ = IndustryMultiples("Telecom. Services Provider")
	assert.Equal(t, 7.11, ebitda)
}

func TestIndustryMultiplesUnknownFallsBack(t *testing.T) {
	ebitda, ebit := IndustryMultiples("Interplanetary Logistics")
	assert.Equal(t, DefaultEV_EBITDA, ebitda)
	assert.Equal(t, DefaultEV_EBIT, ebit)

	ebitda, ebit = IndustryMultiples("")
	assert.Equal(t, DefaultEV_EBITDA, ebitda)
	assert.Equal(t, DefaultEV_EBIT, ebit)
}

func TestIndustryMultiplesDeterministic(t *testing.T) {
	first, _ := IndustryMultiples("retail")
	for i := 0; i < 20; i++ {
		again, _ := IndustryMultiples("retail")
		assert.Equal(t, first, again)
	}
}

func TestAdjustToTargetYear(t *testing.T) {
	// 2024 figures only compound through the 2025 placeholder year
	assert.InDelta(t, 1000*(1+averageInflation()), AdjustToTargetYear(2024, 1000), 0.01)

	// compounding 2023 -> 2025 applies the 2024 rate then the average
	expected := 1000.0 * 1.024 * (1 + averageInflation())
	assert.InDelta(t, expected, AdjustToTargetYear(2023, 1000), 0.01)

	// at or past the target year nothing changes
	assert.Equal(t, 1000.0, AdjustToTargetYear(2025, 1000))
	assert.Equal(t, 1000.0, AdjustToTargetYear(2030, 1000))
}

func valuationInput(period, industry string, profit, depreciation interface{}) extract.Result {
	r := extract.NewResult()
	r[string(extract.SectionInformation)] = map[string]interface{}{
		"accounting_period": period,
		"industry":          industry,
	}
	r[string(extract.SectionIncomeStatement)] = map[string]interface{}{
		"operating_profit_current": profit,
		"depreciation_current":     depreciation,
	}
	return r
}

func TestCalculateMultiples(t *testing.T) {
	v := NewValuator(log.New(io.Discard))

	result := v.CalculateMultiples(valuationInput(
		"2022", "Software (System & Application)", float64(10000), float64(2000)))

	require.NotNil(t, result.EBIT_Original.Value)
	assert.Equal(t, float64(10000), *result.EBIT_Original.Value)
	assert.Equal(t, 2022, result.EBIT_Original.Year)
	require.NotNil(t, result.EBITDA_Original.Value)
	assert.Equal(t, float64(12000), *result.EBITDA_Original.Value)

	// 2022 figures are compounded through 2023 and 2024 at least
	require.NotNil(t, result.EBIT_Adjusted)
	assert.Greater(t, *result.EBIT_Adjusted, float64(10000))

	assert.Equal(t, 32.83, result.EV_EBITDAMultiple)
	assert.Equal(t, 33.47, result.EV_EBITMultiple)

	require.NotNil(t, result.EV_FromEBITDA)
	assert.InDelta(t, *result.EBITDA_Adjusted*32.83, *result.EV_FromEBITDA, 0.01)
	require.NotNil(t, result.EV_FromEBIT)
	assert.InDelta(t, *result.EBIT_Adjusted*33.47, *result.EV_FromEBIT, 0.01)
}

func TestCalculateMultiplesMissingProfit(t *testing.T) {
	v := NewValuator(log.New(io.Discard))

	result := v.CalculateMultiples(valuationInput("2023", "Retail", nil, float64(1000)))
	assert.Nil(t, result.EBIT_Original.Value)
	assert.Nil(t, result.EBITDA_Original.Value)
	assert.Nil(t, result.EV_FromEBITDA)
	assert.Nil(t, result.EV_FromEBIT)
	// multiples still resolve for reporting purposes
	assert.NotZero(t, result.EV_EBITDAMultiple)
}

func TestCalculateMultiplesMissingDepreciation(t *testing.T) {
	v := NewValuator(log.New(io.Discard))

	result := v.CalculateMultiples(valuationInput("2023", "Machinery", float64(15000), nil))
	require.NotNil(t, result.EBITDA_Original.Value)
	assert.Equal(t, *result.EBIT_Original.Value, *result.EBITDA_Original.Value)
}

func TestCalculateMultiplesEmptyResult(t *testing.T) {
	v := NewValuator(log.New(io.Discard))

	result := v.CalculateMultiples(extract.NewResult())
	assert.Nil(t, result.EBIT_Original.Value)
	assert.Equal(t, DefaultPeriod, result.EBIT_Original.Year)
	assert.Equal(t, DefaultEV_EBITDA, result.EV_EBITDAMultiple)
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, 2023, parsePeriod("2023"))
	assert.Equal(t, 2023, parsePeriod("31.12.2023"))
	assert.Equal(t, 2022, parsePeriod(float64(2022)))
	assert.Equal(t, DefaultPeriod, parsePeriod("poslední rok"))
	assert.Equal(t, DefaultPeriod, parsePeriod(nil))
}

func TestToFloat(t *testing.T) {
	require.NotNil(t, toFloat(float64(42)))
	assert.Equal(t, float64(42), *toFloat(float64(42)))
	require.NotNil(t, toFloat("1200"))
	assert.Equal(t, float64(1200), *toFloat("1200"))
	assert.Nil(t, toFloat("n/a"))
	assert.Nil(t, toFloat(nil))
	assert.Nil(t, toFloat(true))
}
