package extract

import "strings"

// systemPersona frames every extraction call. Keeping it a single shared
// constant means models see the same persona across all five sections.
const systemPersona = "You are a highly accurate financial data extraction assistant expert in Czech financial documents, including those with OCR errors. Return ONLY the requested valid JSON object. Use `null` only if a value is genuinely missing or unreadable. For analytical summaries, provide concise insights based *only* on the provided text context."

// renderPrompt substitutes the context window into a template. Templates use
// a literal {context} marker so that percent signs and braces in report text
// never interact with format verbs.
func renderPrompt(template, context string) string {
	return strings.ReplaceAll(template, "{context}", context)
}

// promptFor returns the extraction prompt template for a section.
func promptFor(section SectionType) string {
	switch section {
	case SectionInformation:
		return companyInfoPrompt
	case SectionIncomeStatement:
		return incomeStatementPrompt
	case SectionBalanceSheet:
		return balanceSheetPrompt
	case SectionCashFlow:
		return cashFlowPrompt
	case SectionDocumentAnalysis:
		return documentAnalysisPrompt
	}
	return ""
}

const companyInfoPrompt = `Extract the following company information from the provided Czech financial report (výroční zpráva). Return ONLY a valid JSON object. Use ` + "`null`" + ` if a value cannot be reliably found. Ensure numbers are integers.
Also, provide a brief analytical summary based on the text, focusing on the company's main business, strategic direction, or significant achievements mentioned in the introductory parts or company profile.

Text Context:
---
{context}
---

Required JSON Object Structure:
{
    "IC": "string or null (Find IČ or IČO, typically 8 digits)",
    "registered_capital": "string or null (Find 'Základní kapitál')",
    "employee_count": "integer or null (Find 'Počet zaměstnanců')",
    "accounting_period": "string or null (Find the reporting year, e.g., '2023')",
    "company_name": "string or null (Find full company name)",
    "legal_form": "string or null (Find 'Právní forma')",
    "main_activities": ["string", ...] or [],
    "established": "string or null (Find 'Datum vzniku / založení')",
    "headquarters": "string or null (Find 'Sídlo')",
    "news": "string or null (Summarize key developments, partnerships, awards, product launches from the report year, if available in this context)",
    "industry": "string or null (Infer based on activities/description. Choose from: [Advertising, Aerospace/Defense, Apparel, Auto & Truck, Auto Parts, Beverage (Alcoholic), Beverage (Soft), Broadcasting, Building Materials, Business & Consumer Services, Cable TV, Chemical (Basic), Chemical (Diversified), Chemical (Specialty), Coal & Related Energy, Computer Services, Computers/Peripherals, Construction Supplies, Diversified, Drugs (Pharmaceutical), Education, Electrical Equipment, Electronics (General), Engineering/Construction, Farming/Agriculture, Food Processing, Food Wholesalers, Furn/Home Furnishings, Homebuilding, Hotel/Gaming, Household Products, Information Services, Machinery, Manufacturing, Metals & Mining, Office Equipment & Services, Paper/Forest Products, Power, Real Estate, Recreation, Restaurant/Dining, Retail, Rubber& Tires, Semiconductor, Software, Steel, Telecommunications, Transportation, Trucking, Utility]. Default to 'Manufacturing' or 'Services' if unclear.)",
    "analytical_summary": "string or null (Brief 2-4 sentence summary of the company's core business, strategy, or key highlights from the provided text context, focusing on information typically found in an introduction or company profile.)"
}
Provide ONLY the JSON object.`

const incomeStatementPrompt = `Extract key financial metrics from the provided Czech Income Statement (Výkaz zisku a ztráty). Focus on the CURRENT accounting period ('běžném období').
Also, provide a brief textual analysis (2-3 sentences) of any notable aspects, significant items, or trends in the current period data. For example, 'Revenue is primarily driven by product sales, with personnel costs being the largest expense.'
Return ONLY a valid JSON object. Use ` + "`null`" + ` if a value is genuinely missing. Convert values to integers.

Text Context:
---
{context}
---

Required JSON Object Structure (CURRENT PERIOD ONLY):
{
    "revenue_from_products_and_services_current": "integer or null",
    "revenue_from_goods_current": "integer or null",
    "production_consumption_current": "integer or null",
    "personnel_costs_current": "integer or null",
    "wage_costs_current": "integer or null",
    "depreciation_current": "integer or null",
    "operating_profit_current": "integer or null",
    "ebit_current": "integer or null (same as operating_profit_current)",
    "analytical_summary": "string or null (Brief 2-3 sentence analysis of key items, performance drivers, or notable aspects of the current period's income statement based *only* on the provided context.)"
}
Provide ONLY the JSON object.`

const balanceSheetPrompt = `Extract key financial metrics from the provided Czech Balance Sheet (Rozvaha) for CURRENT ('Běžné') and PREVIOUS ('Minulé') periods.
Also, provide a brief textual analysis (2-3 sentences) of any significant changes in asset/liability structure between periods, or notable aspects of the current period's balance sheet (e.g., 'Total assets grew mainly due to an increase in tangible assets, while equity remained stable.').
Return ONLY a valid JSON object. Use ` + "`null`" + ` if a value is genuinely missing. Convert values to integers.

Text Context:
---
{context}
---

Required JSON Object Structure:
{
    "total_assets_current": "integer or null",
    "total_assets_previous": "integer or null",
    "intangible_assets_current": "integer or null",
    "intangible_assets_previous": "integer or null",
    "tangible_assets_current": "integer or null",
    "tangible_assets_previous": "integer or null",
    "current_assets_current": "integer or null",
    "current_assets_previous": "integer or null",
    "total_liabilities_equity_current": "integer or null",
    "total_liabilities_equity_previous": "integer or null",
    "equity_current": "integer or null",
    "equity_previous": "integer or null",
    "liabilities_current": "integer or null",
    "liabilities_previous": "integer or null",
    "analytical_summary": "string or null (Brief 2-3 sentence analysis of significant changes or notable aspects of the balance sheet structure based *only* on the provided context.)"
}
Provide ONLY the JSON object.`

const cashFlowPrompt = `Extract key financial metrics from the provided Czech Cash Flow Statement (Přehled o peněžních tocích) for CURRENT ('běžné') and PREVIOUS ('minulé') periods.
Also, provide a brief textual analysis (2-3 sentences) of the company's cash generation, major cash flows, or overall cash health (e.g., 'Operating activities generated strong cash flow, largely used for investments.').
Return ONLY a valid JSON object. Use ` + "`null`" + ` if a value is genuinely missing. Convert values to integers.

Text Context:
---
{context}
---

Required JSON Object Structure:
{
    "initial_cash_balance_current": "integer or null",
    "initial_cash_balance_previous": "integer or null",
    "profit_before_tax_current": "integer or null",
    "profit_before_tax_previous": "integer or null",
    "net_operating_cash_flow_current": "integer or null",
    "net_operating_cash_flow_previous": "integer or null",
    "capex_current": "integer or null (usually negative)",
    "capex_previous": "integer or null (usually negative)",
    "proceeds_from_sale_of_fixed_assets_current": "integer or null",
    "proceeds_from_sale_of_fixed_assets_previous": "integer or null",
    "analytical_summary": "string or null (Brief 2-3 sentence analysis of cash generation, major flows, or overall cash health based *only* on the provided context.)"
}
Provide ONLY the JSON object.`

const documentAnalysisPrompt = `Based on the provided text context from a financial report, extract key qualitative insights.
Focus on summarizing management's perspective, strategic direction, significant events, risks, and outlook if mentioned.
Return ONLY a valid JSON object. Use ` + "`null`" + ` if specific information is not found in the context.

Text Context:
---
{context}
---

Required JSON Object Structure:
{
    "management_discussion_summary": "string or null (Summarize the main points from any management discussion, company performance overview, or strategic commentary.)",
    "significant_events_achievements": "string or null (List key events, achievements, or milestones mentioned for the reporting period.)",
    "key_risks_and_uncertainties": "string or null (Identify and summarize any major risks, challenges, or uncertainties highlighted by the company.)",
    "future_outlook_and_strategy": "string or null (Summarize any statements about future plans, strategy, or outlook for the company.)"
}
Provide ONLY the JSON object. Be concise and stick to information present in the text.`
