package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finreport/pkg/core/extract"
	"finreport/pkg/core/llm"
)

type promptRouter struct{}

func (promptRouter) Provider(string) llm.Provider { return providerFunc(route) }

type providerFunc func(prompt string) (string, error)

func (f providerFunc) GenerateResponse(_ context.Context, prompt, _ string, _ map[string]interface{}) (string, error) {
	return f(prompt)
}

func route(prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, `"revenue_from_products_and_services_current"`):
		return `{"operating_profit_current": 52000, "depreciation_current": 8000, "analytical_summary": "Silný provozní výsledek."}`, nil
	case strings.Contains(prompt, `"total_assets_current"`):
		return `{"total_assets_current": 820000, "analytical_summary": "Stabilní bilance."}`, nil
	case strings.Contains(prompt, `"initial_cash_balance_current"`):
		return `{"net_operating_cash_flow_current": 61000, "analytical_summary": "Kladný provozní tok."}`, nil
	case strings.Contains(prompt, `"management_discussion_summary"`):
		return `{"management_discussion_summary": "Rok hodnocen kladně."}`, nil
	case strings.Contains(prompt, `"IC"`):
		return `{"IC": "12345678", "company_name": "ABC Výroba s.r.o.", "industry": "Machinery", "accounting_period": "2023", "analytical_summary": "Strojírenská výroba."}`, nil
	default:
		return "Souhrnné hodnocení společnosti.", nil
	}
}

const workflowHTML = `<html><body>
<h1>Výroční zpráva 2023</h1>
<p>ABC Výroba s.r.o., IČ 12345678</p>
<p>Sídlo: Praha 5</p>
<p>Právní forma: s.r.o.</p>
<p>Počet zaměstnanců: 120</p>
<h2>VÝKAZ ZISKU A ZTRÁTY</h2>
<p>Tržby z prodeje výrobků a služeb 450000</p>
<p>Odpisy 8000</p>
<p>Provozní výsledek hospodaření 52000</p>
<h2>ROZVAHA</h2>
<p>AKTIVA CELKEM 820000 790000</p>
<p>Vlastní kapitál 410000</p>
<h2>PŘEHLED O PENĚŽNÍCH TOCÍCH</h2>
<p>Peněžní toky z provozní činnosti 61000</p>
<p>Čistý peněžní tok 32000</p>
</body></html>`

func TestWorkflowRun(t *testing.T) {
	w := NewWorkflow(extract.DefaultConfig(), promptRouter{}, log.New(io.Discard))

	result, err := w.Run(context.Background(), workflowHTML)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "12345678", result.Data.Section(extract.SectionInformation)["IC"])

	// valuation picks up the extracted figures
	require.NotNil(t, result.Valuation.EBIT_Original.Value)
	assert.Equal(t, float64(52000), *result.Valuation.EBIT_Original.Value)
	require.NotNil(t, result.Valuation.EBITDA_Original.Value)
	assert.Equal(t, float64(60000), *result.Valuation.EBITDA_Original.Value)
	assert.Equal(t, 2023, result.Valuation.EBIT_Original.Year)
	assert.Equal(t, 12.80, result.Valuation.EV_EBITDAMultiple)

	require.NotNil(t, result.Consistency)
	assert.True(t, result.Consistency.AllPassed)

	assert.Contains(t, result.ReportMarkdown, "ABC Výroba s.r.o.")
	assert.Contains(t, result.ReportMarkdown, "Souhrnné hodnocení společnosti.")
	assert.Contains(t, result.ReportHTML, "<h1")
}

func TestWorkflowRunEmptyInput(t *testing.T) {
	w := NewWorkflow(extract.DefaultConfig(), promptRouter{}, log.New(io.Discard))

	result, err := w.Run(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestWorkflowRunIDsUnique(t *testing.T) {
	w := NewWorkflow(extract.DefaultConfig(), promptRouter{}, log.New(io.Discard))

	first, err := w.Run(context.Background(), workflowHTML)
	require.NoError(t, err)
	second, err := w.Run(context.Background(), workflowHTML)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestWorkflowPartialExtraction(t *testing.T) {
	// no balance sheet in the document: the run still completes with the
	// section empty and the report rendered
	html := strings.ReplaceAll(workflowHTML, "<h2>ROZVAHA</h2>", "")
	html = strings.ReplaceAll(html, "<p>AKTIVA CELKEM 820000 790000</p>", "")

	w := NewWorkflow(extract.DefaultConfig(), promptRouter{}, log.New(io.Discard))
	result, err := w.Run(context.Background(), html)
	require.NoError(t, err)

	assert.Empty(t, result.Data.Section(extract.SectionBalanceSheet))
	assert.Contains(t, result.ReportMarkdown, "| Total Assets | N/A | N/A |")
	require.NotNil(t, result.Valuation.EV_FromEBIT)
}
