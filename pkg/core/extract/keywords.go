package extract

// DefaultKeywords returns the heading variants searched for each financial
// statement. Variants cover proper Czech spelling, diacritic-stripped OCR
// output, and English headings seen in bilingual reports. Order matters only
// for log readability; scoring considers every variant.
func DefaultKeywords() map[SectionType][]string {
	return map[SectionType][]string{
		SectionIncomeStatement: {
			"VÝKAZ ZISKU A ZTRÁTY",
			"VÝKAZ ZISKU A ZTRÁTY, druhové členění",
			"VYKAZ ZISKU A ZTRATY",
			"VÝKAZ ZISKU",
			"VYKAZ ZISKU",
			"VÝSLEDOVKA",
			"Income Statement",
		},
		SectionBalanceSheet: {
			"ROZVAHA",
			"Rozvaha",
			"Balance Sheet",
			"BILANCE",
			"AKTIVA",
			"PASIVA",
		},
		SectionCashFlow: {
			"PŘEHLED O PENĚŽNICH TOCÍCH",
			"PŘEHLED O PENĚŽNÍCH TOCÍCH",
			"PREHLED O PENEZNICH TOCICH",
			"CASH FLOW",
			"PENĚŽNÍ TOKY",
			"PENEZNI TOKY",
			"Přehled o peněžních tocích",
		},
	}
}

// DefaultCashFlowIndicators returns the vocabulary a cash-flow context must
// contain to be considered plausible. Cash-flow headings are located with a
// lower confidence threshold, so the numeric check alone would accept prose
// paragraphs that merely mention a number.
func DefaultCashFlowIndicators() []string {
	return []string{
		"Stav peněžních prostředků",
		"Peněžní toky z",
		"Čistý peněžní tok",
		"PENĚŽNÍ TOKY",
		"Cash flow",
		"Počáteční stav peněžních",
		"Konečný stav peněžních",
	}
}
