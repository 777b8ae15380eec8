// Package report renders a valuation and analysis report as Markdown and
// HTML from an extraction result and its multiples valuation.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"finreport/pkg/core/extract"
	"finreport/pkg/core/llm"
	"finreport/pkg/core/utils"
	"finreport/pkg/core/valuation"
)

const synthesisPersona = "You are a concise financial analyst assistant. Provide clear and brief summaries based on the context. Focus on the key takeaways."

// Builder assembles the report. The provider is optional: without one the
// narrative sections fall back to a fixed notice and the report still
// carries all extracted data.
type Builder struct {
	provider llm.Provider
	logger   *log.Logger
	now      func() time.Time
}

func NewBuilder(provider llm.Provider, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{provider: provider, logger: logger, now: time.Now}
}

// BuildMarkdown renders the full report. Missing sections degrade to "N/A"
// cells rather than dropping their part of the report.
func (b *Builder) BuildMarkdown(ctx context.Context, data extract.Result, val valuation.MultiplesResult) string {
	info := data.Section(extract.SectionInformation)
	income := data.Section(extract.SectionIncomeStatement)
	balance := data.Section(extract.SectionBalanceSheet)
	cash := data.Section(extract.SectionCashFlow)
	analysis := data.Section(extract.SectionDocumentAnalysis)

	var md strings.Builder
	md.WriteString("# Company Valuation & Analysis Report\n\n")
	fmt.Fprintf(&md, "*Report Generated: %s*\n\n", b.now().Format("2006-01-02 15:04:05"))

	md.WriteString("## Part 1: Executive Summary & Key Findings\n\n")

	md.WriteString("### Company Snapshot\n\n")
	fmt.Fprintf(&md, "**Company Name:** %s  \n", textField(info, "company_name"))
	fmt.Fprintf(&md, "**Industry:** %s  \n", textField(info, "industry"))
	fmt.Fprintf(&md, "**Accounting Period:** %s  \n", textField(info, "accounting_period"))
	fmt.Fprintf(&md, "**Headquarters:** %s\n\n", textField(info, "headquarters"))
	if summary := textField(info, "analytical_summary"); summary != "N/A" {
		fmt.Fprintf(&md, "**Company Profile Summary:** %s\n\n", utils.CleanSummary(summary))
	}

	md.WriteString("### Key Valuation Results\n\n")
	md.WriteString("Enterprise Value (EV) estimates, adjusted for 2025 multiples:\n\n")
	fmt.Fprintf(&md, "- Based on EV/EBIT (%.2fx): %s\n", val.EV_EBITMultiple, formatCZK(val.EV_FromEBIT))
	fmt.Fprintf(&md, "- Based on EV/EBITDA (%.2fx): %s\n\n", val.EV_EBITDAMultiple, formatCZK(val.EV_FromEBITDA))

	md.WriteString("### Overall Financial Health & Performance\n\n")
	health := b.synthesize(ctx, "Financial Health Assessment", fmt.Sprintf(
		"Based on the following data, provide a concise (3-5 sentences) assessment of the company's overall financial health and performance. Highlight key strengths and weaknesses.\nContext:\n%s",
		b.healthContext(info, income, balance, cash, analysis)))
	md.WriteString(health + "\n\n")

	md.WriteString("### Key Strategic Insights & Outlook\n\n")
	fmt.Fprintf(&md, "**Management Discussion Summary:** %s\n\n", textField(analysis, "management_discussion_summary"))
	fmt.Fprintf(&md, "**Significant Events/Achievements:** %s\n\n", textField(analysis, "significant_events_achievements"))
	fmt.Fprintf(&md, "**Key Risks & Uncertainties:** %s\n\n", textField(analysis, "key_risks_and_uncertainties"))
	fmt.Fprintf(&md, "**Future Outlook & Strategy:** %s\n\n", textField(analysis, "future_outlook_and_strategy"))

	md.WriteString("### Valuation Conclusion\n\n")
	conclusion := b.synthesize(ctx, "Report Conclusion", fmt.Sprintf(
		"Based on the valuation results and overall analysis provided below, write a brief (2-4 sentences) concluding statement for this valuation report.\nContext:\nCompany: %s\nValuation based on EV/EBIT: %s\nValuation based on EV/EBITDA: %s\nOverall Financial Health Assessment: %s",
		textField(info, "company_name"), formatCZK(val.EV_FromEBIT), formatCZK(val.EV_FromEBITDA), health))
	md.WriteString(conclusion + "\n\n")

	md.WriteString("## Part 2: Detailed Analysis & Supporting Data\n\n")

	md.WriteString("### Detailed Company Overview\n\n")
	fmt.Fprintf(&md, "**IČ (ID):** %s  \n", textField(info, "IC"))
	fmt.Fprintf(&md, "**Legal Form:** %s  \n", textField(info, "legal_form"))
	fmt.Fprintf(&md, "**Registered Capital:** %s  \n", textField(info, "registered_capital"))
	fmt.Fprintf(&md, "**Established:** %s  \n", textField(info, "established"))
	fmt.Fprintf(&md, "**Employee Count:** %s  \n", textField(info, "employee_count"))
	fmt.Fprintf(&md, "**Main Activities:** %s  \n", activities(info))
	fmt.Fprintf(&md, "**Recent News/Developments:** %s\n\n", textField(info, "news"))

	md.WriteString("### Income Statement Analysis\n\n")
	md.WriteString("| Metric (Current Period) | Value (Kč thousands) |\n|---|---|\n")
	for _, row := range []struct{ label, key string }{
		{"Revenue (Products & Services)", "revenue_from_products_and_services_current"},
		{"Revenue (Goods)", "revenue_from_goods_current"},
		{"Production Consumption", "production_consumption_current"},
		{"Personnel Costs", "personnel_costs_current"},
		{"Depreciation & Amortization", "depreciation_current"},
		{"Operating Profit (EBIT)", "operating_profit_current"},
	} {
		fmt.Fprintf(&md, "| %s | %s |\n", row.label, numberField(income, row.key))
	}
	md.WriteString("\n")
	writeAnalysis(&md, income)

	md.WriteString("### Balance Sheet Analysis\n\n")
	md.WriteString("| Metric | Current Period | Previous Period |\n|---|---|---|\n")
	for _, row := range []struct{ label, cur, prev string }{
		{"Total Assets", "total_assets_current", "total_assets_previous"},
		{"Tangible Assets", "tangible_assets_current", "tangible_assets_previous"},
		{"Current Assets", "current_assets_current", "current_assets_previous"},
		{"Total Equity", "equity_current", "equity_previous"},
		{"Total Liabilities", "liabilities_current", "liabilities_previous"},
	} {
		fmt.Fprintf(&md, "| %s | %s | %s |\n", row.label, numberField(balance, row.cur), numberField(balance, row.prev))
	}
	md.WriteString("\n")
	writeAnalysis(&md, balance)

	md.WriteString("### Cash Flow Statement Analysis\n\n")
	md.WriteString("| Metric | Current Period | Previous Period |\n|---|---|---|\n")
	for _, row := range []struct{ label, cur, prev string }{
		{"Initial Cash Balance", "initial_cash_balance_current", "initial_cash_balance_previous"},
		{"Net Operating Cash Flow", "net_operating_cash_flow_current", "net_operating_cash_flow_previous"},
		{"CAPEX (Investment)", "capex_current", "capex_previous"},
		{"Proceeds from Sale of Fixed Assets", "proceeds_from_sale_of_fixed_assets_current", "proceeds_from_sale_of_fixed_assets_previous"},
	} {
		fmt.Fprintf(&md, "| %s | %s | %s |\n", row.label, numberField(cash, row.cur), numberField(cash, row.prev))
	}
	md.WriteString("\n")
	writeAnalysis(&md, cash)

	md.WriteString("### Detailed Valuation Metrics\n\n")
	fmt.Fprintf(&md, "**Original Financials (valuation basis):**\n\n")
	fmt.Fprintf(&md, "- EBIT (%d): %s\n", val.EBIT_Original.Year, formatCZK(val.EBIT_Original.Value))
	fmt.Fprintf(&md, "- EBITDA (%d): %s\n\n", val.EBITDA_Original.Year, formatCZK(val.EBITDA_Original.Value))
	fmt.Fprintf(&md, "**Adjusted Financials (for 2025 multiples):**\n\n")
	fmt.Fprintf(&md, "- Adjusted EBIT: %s\n", formatCZK(val.EBIT_Adjusted))
	fmt.Fprintf(&md, "- Adjusted EBITDA: %s\n\n", formatCZK(val.EBITDA_Adjusted))
	fmt.Fprintf(&md, "**Applied Multiples:**\n\n")
	fmt.Fprintf(&md, "- EV/EBIT Multiple: %.2fx\n", val.EV_EBITMultiple)
	fmt.Fprintf(&md, "- EV/EBITDA Multiple: %.2fx\n\n", val.EV_EBITDAMultiple)

	md.WriteString("### Disclaimer\n\n")
	md.WriteString("*This report is generated based on automated analysis of financial documents and publicly available data. The information and valuation provided are for informational purposes only and should not be considered as financial advice. Users should conduct their own due diligence before making any investment decisions.*\n")

	return md.String()
}

// BuildHTML renders the Markdown report to HTML.
func (b *Builder) BuildHTML(ctx context.Context, data extract.Result, val valuation.MultiplesResult) (string, error) {
	return utils.RenderHTML(b.BuildMarkdown(ctx, data, val))
}

func (b *Builder) healthContext(info, income, balance, cash, analysis map[string]interface{}) string {
	return fmt.Sprintf(`Company: %s
Industry: %s
Key Financials (Current Period):
- Revenue (Products & Services): %s
- Operating Profit (EBIT): %s
- Net Operating Cash Flow: %s
- Total Assets: %s
- Total Equity: %s

Management Discussion Summary: %s
Income Statement Analysis: %s
Balance Sheet Analysis: %s
Cash Flow Analysis: %s`,
		textField(info, "company_name"), textField(info, "industry"),
		numberField(income, "revenue_from_products_and_services_current"),
		numberField(income, "operating_profit_current"),
		numberField(cash, "net_operating_cash_flow_current"),
		numberField(balance, "total_assets_current"),
		numberField(balance, "equity_current"),
		textField(analysis, "management_discussion_summary"),
		textField(income, "analytical_summary"),
		textField(balance, "analytical_summary"),
		textField(cash, "analytical_summary"))
}

// synthesize asks the provider for a narrative paragraph. Any failure
// degrades to a fixed notice so the report always completes.
func (b *Builder) synthesize(ctx context.Context, kind, prompt string) string {
	if b.provider == nil {
		return fmt.Sprintf("AI-generated %s could not be produced as the AI service is unavailable.", kind)
	}
	raw, err := b.provider.GenerateResponse(ctx, prompt, synthesisPersona, map[string]interface{}{
		"temperature": 0.3,
	})
	if err != nil {
		b.logger.Error("narrative synthesis failed", "kind", kind, "err", err)
		return fmt.Sprintf("An error occurred while generating the %s.", kind)
	}
	return utils.CleanSummary(raw)
}

func writeAnalysis(md *strings.Builder, section map[string]interface{}) {
	if summary := textField(section, "analytical_summary"); summary != "N/A" {
		fmt.Fprintf(md, "**Analysis:** %s\n\n", utils.CleanSummary(summary))
	}
}

// textField renders a string-ish field, "N/A" when absent.
func textField(section map[string]interface{}, key string) string {
	switch t := section[key].(type) {
	case string:
		if strings.TrimSpace(t) != "" {
			return t
		}
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	}
	return "N/A"
}

func activities(info map[string]interface{}) string {
	raw, ok := info["main_activities"].([]interface{})
	if !ok || len(raw) == 0 {
		return "N/A"
	}
	var parts []string
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, ", ")
}

// numberField formats a numeric field with thousands separators.
func numberField(section map[string]interface{}, key string) string {
	v, ok := section[key].(float64)
	if !ok {
		return "N/A"
	}
	return groupThousands(v)
}

// formatCZK formats an amount in thousands of CZK, "N/A" when nil.
func formatCZK(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return groupThousands(*value) + " Kč thousands"
}

func groupThousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var out strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(d)
	}
	if neg {
		return "-" + out.String()
	}
	return out.String()
}
