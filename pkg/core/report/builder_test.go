package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finreport/pkg/core/extract"
	"finreport/pkg/core/valuation"
)

type fixedProvider struct {
	response string
	err      error
}

func (p fixedProvider) GenerateResponse(context.Context, string, string, map[string]interface{}) (string, error) {
	return p.response, p.err
}

func sampleData() extract.Result {
	r := extract.NewResult()
	r[string(extract.SectionInformation)] = map[string]interface{}{
		"company_name":       "ABC Výroba s.r.o.",
		"industry":           "Machinery",
		"accounting_period":  "2023",
		"headquarters":       "Praha 5",
		"IC":                 "12345678",
		"main_activities":    []interface{}{"strojírenská výroba", "kovoobrábění"},
		"analytical_summary": "Strojírenská firma se stabilním růstem.",
	}
	r[string(extract.SectionIncomeStatement)] = map[string]interface{}{
		"revenue_from_products_and_services_current": float64(450000),
		"operating_profit_current":                   float64(52000),
		"analytical_summary":                         "Tržby táhne prodej vlastních výrobků.",
	}
	r[string(extract.SectionBalanceSheet)] = map[string]interface{}{
		"total_assets_current":  float64(820000),
		"total_assets_previous": float64(790000),
	}
	r[string(extract.SectionDocumentAnalysis)] = map[string]interface{}{
		"management_discussion_summary": "Vedení hodnotí rok kladně.",
	}
	return r
}

func sampleValuation() valuation.MultiplesResult {
	ebit := float64(52000)
	ev := ebit * 16.16
	return valuation.MultiplesResult{
		EBIT_Original:   valuation.PeriodValue{Value: &ebit, Year: 2023},
		EBITDA_Original: valuation.PeriodValue{Value: &ebit, Year: 2023},
		EBIT_Adjusted:   &ebit,
		EBITDA_Adjusted: &ebit,
		EV_EBITMultiple: 16.16, EV_EBITDAMultiple: 12.80,
		EV_FromEBIT: &ev,
	}
}

func TestBuildMarkdown(t *testing.T) {
	b := NewBuilder(fixedProvider{response: "Společnost je finančně zdravá."}, log.New(io.Discard))

	md := b.BuildMarkdown(context.Background(), sampleData(), sampleValuation())

	assert.Contains(t, md, "# Company Valuation & Analysis Report")
	assert.Contains(t, md, "**Company Name:** ABC Výroba s.r.o.")
	assert.Contains(t, md, "| Revenue (Products & Services) | 450,000 |")
	assert.Contains(t, md, "| Total Assets | 820,000 | 790,000 |")
	assert.Contains(t, md, "EV/EBIT (16.16x)")
	assert.Contains(t, md, "840,320 Kč thousands")
	assert.Contains(t, md, "Společnost je finančně zdravá.")
	assert.Contains(t, md, "Vedení hodnotí rok kladně.")
	assert.Contains(t, md, "### Disclaimer")
}

func TestBuildMarkdownMissingSections(t *testing.T) {
	b := NewBuilder(nil, log.New(io.Discard))

	md := b.BuildMarkdown(context.Background(), extract.NewResult(), valuation.MultiplesResult{})

	// empty extraction still renders every part of the report
	assert.Contains(t, md, "**Company Name:** N/A")
	assert.Contains(t, md, "| Total Assets | N/A | N/A |")
	assert.Contains(t, md, "Based on EV/EBIT (0.00x): N/A")
	assert.Contains(t, md, "AI service is unavailable")
}

func TestBuildMarkdownProviderFailure(t *testing.T) {
	b := NewBuilder(fixedProvider{err: errors.New("timeout")}, log.New(io.Discard))

	md := b.BuildMarkdown(context.Background(), sampleData(), sampleValuation())
	assert.Contains(t, md, "An error occurred while generating the Financial Health Assessment.")
	// data sections are untouched by narrative failures
	assert.Contains(t, md, "| Revenue (Products & Services) | 450,000 |")
}

func TestBuildHTML(t *testing.T) {
	b := NewBuilder(nil, log.New(io.Discard))

	html, err := b.BuildHTML(context.Background(), sampleData(), sampleValuation())
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "ABC Výroba s.r.o.")
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "12,345,678", groupThousands(12345678))
	assert.Equal(t, "-52,000", groupThousands(-52000))
}

func TestTextFieldNumericValue(t *testing.T) {
	section := map[string]interface{}{"employee_count": float64(120)}
	assert.Equal(t, "120", textField(section, "employee_count"))
	assert.Equal(t, "N/A", textField(section, "missing"))
	assert.Equal(t, "N/A", textField(map[string]interface{}{"x": "  "}, "x"))
}

func TestActivities(t *testing.T) {
	info := map[string]interface{}{
		"main_activities": []interface{}{"výroba", "servis"},
	}
	assert.Equal(t, "výroba, servis", activities(info))
	assert.Equal(t, "N/A", activities(map[string]interface{}{}))
	assert.Equal(t, "N/A", activities(map[string]interface{}{"main_activities": []interface{}{}}))
}

func TestBuildMarkdownDeterministicLayout(t *testing.T) {
	b := NewBuilder(nil, log.New(io.Discard))
	first := b.BuildMarkdown(context.Background(), sampleData(), sampleValuation())
	second := b.BuildMarkdown(context.Background(), sampleData(), sampleValuation())

	// timestamps aside, the layout must not depend on map iteration order
	stripTime := func(s string) string {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if strings.HasPrefix(line, "*Report Generated:") {
				lines[i] = ""
			}
		}
		return strings.Join(lines, "\n")
	}
	assert.Equal(t, stripTime(first), stripTime(second))
}
