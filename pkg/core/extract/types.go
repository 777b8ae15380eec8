package extract

// SectionType tags one extraction target. The string values double as the
// top-level keys of the orchestrated result.
type SectionType string

const (
	SectionInformation      SectionType = "information"
	SectionIncomeStatement  SectionType = "income_statement"
	SectionBalanceSheet     SectionType = "balance_sheet"
	SectionCashFlow         SectionType = "cash_flow"
	SectionDocumentAnalysis SectionType = "document_analysis"
)

// MatchResult records where a section heading was found.
type MatchResult struct {
	Index int     // 0-based position in the normalized line sequence
	Score float64 // similarity ratio in [0,1]
	Line  string  // the original matched line
}

// ContextWindow is the bounded slice of document text around a match,
// validated and capped, ready to feed an LLM.
type ContextWindow struct {
	Section SectionType
	Text    string
	Match   MatchResult
}

// Result is the orchestrated output: section name to extracted fields.
// A failed section holds an empty (never nil) mapping, so downstream
// consumers can index without existence checks.
type Result map[string]map[string]interface{}

// NewResult returns a Result with all five section keys present and empty.
func NewResult() Result {
	return Result{
		string(SectionInformation):      {},
		string(SectionIncomeStatement):  {},
		string(SectionBalanceSheet):     {},
		string(SectionCashFlow):         {},
		string(SectionDocumentAnalysis): {},
	}
}

// Section returns the mapping for a section, never nil.
func (r Result) Section(s SectionType) map[string]interface{} {
	if m := r[string(s)]; m != nil {
		return m
	}
	return map[string]interface{}{}
}

// Typed records mirror the field sets the prompts request. The loose Result
// mapping stays the boundary format; these exist for consumers (valuation,
// reporting) that want schema checks, via utils.DecodeSection.

// CompanyInfo is the information section record.
type CompanyInfo struct {
	IC                string   `json:"IC"`
	RegisteredCapital string   `json:"registered_capital"`
	EmployeeCount     *float64 `json:"employee_count"`
	AccountingPeriod  string   `json:"accounting_period"`
	CompanyName       string   `json:"company_name"`
	LegalForm         string   `json:"legal_form"`
	MainActivities    []string `json:"main_activities"`
	Established       string   `json:"established"`
	Headquarters      string   `json:"headquarters"`
	News              string   `json:"news"`
	Industry          string   `json:"industry"`
	AnalyticalSummary string   `json:"analytical_summary"`
}

// IncomeStatement is the income_statement section record (current period).
type IncomeStatement struct {
	RevenueFromProductsAndServices *float64 `json:"revenue_from_products_and_services_current"`
	RevenueFromGoods               *float64 `json:"revenue_from_goods_current"`
	ProductionConsumption          *float64 `json:"production_consumption_current"`
	PersonnelCosts                 *float64 `json:"personnel_costs_current"`
	WageCosts                      *float64 `json:"wage_costs_current"`
	Depreciation                   *float64 `json:"depreciation_current"`
	OperatingProfit                *float64 `json:"operating_profit_current"`
	EBIT                           *float64 `json:"ebit_current"`
	AnalyticalSummary              string   `json:"analytical_summary"`
}

// BalanceSheet is the balance_sheet section record (current and previous).
type BalanceSheet struct {
	TotalAssetsCurrent             *float64 `json:"total_assets_current"`
	TotalAssetsPrevious            *float64 `json:"total_assets_previous"`
	IntangibleAssetsCurrent        *float64 `json:"intangible_assets_current"`
	IntangibleAssetsPrevious       *float64 `json:"intangible_assets_previous"`
	TangibleAssetsCurrent          *float64 `json:"tangible_assets_current"`
	TangibleAssetsPrevious         *float64 `json:"tangible_assets_previous"`
	CurrentAssetsCurrent           *float64 `json:"current_assets_current"`
	CurrentAssetsPrevious          *float64 `json:"current_assets_previous"`
	TotalLiabilitiesEquityCurrent  *float64 `json:"total_liabilities_equity_current"`
	TotalLiabilitiesEquityPrevious *float64 `json:"total_liabilities_equity_previous"`
	EquityCurrent                  *float64 `json:"equity_current"`
	EquityPrevious                 *float64 `json:"equity_previous"`
	LiabilitiesCurrent             *float64 `json:"liabilities_current"`
	LiabilitiesPrevious            *float64 `json:"liabilities_previous"`
	AnalyticalSummary              string   `json:"analytical_summary"`
}

// CashFlow is the cash_flow section record (current and previous).
type CashFlow struct {
	InitialCashBalanceCurrent     *float64 `json:"initial_cash_balance_current"`
	InitialCashBalancePrevious    *float64 `json:"initial_cash_balance_previous"`
	ProfitBeforeTaxCurrent        *float64 `json:"profit_before_tax_current"`
	ProfitBeforeTaxPrevious       *float64 `json:"profit_before_tax_previous"`
	NetOperatingCashFlowCurrent   *float64 `json:"net_operating_cash_flow_current"`
	NetOperatingCashFlowPrevious  *float64 `json:"net_operating_cash_flow_previous"`
	CapexCurrent                  *float64 `json:"capex_current"`
	CapexPrevious                 *float64 `json:"capex_previous"`
	FixedAssetSaleProceedsCurrent *float64 `json:"proceeds_from_sale_of_fixed_assets_current"`
	FixedAssetSaleProceedsPrev    *float64 `json:"proceeds_from_sale_of_fixed_assets_previous"`
	AnalyticalSummary             string   `json:"analytical_summary"`
}

// DocumentAnalysis is the document_analysis section record.
type DocumentAnalysis struct {
	ManagementDiscussionSummary string `json:"management_discussion_summary"`
	SignificantEvents           string `json:"significant_events_achievements"`
	KeyRisks                    string `json:"key_risks_and_uncertainties"`
	FutureOutlook               string `json:"future_outlook_and_strategy"`
}
