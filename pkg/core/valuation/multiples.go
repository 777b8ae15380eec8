package valuation

import "strings"

// Damodaran EV/EBITDA and EV/EBIT multiples, January 2025, "All firms".
type industryMultiple struct {
	Industry  string
	EV_EBITDA float64
	EV_EBIT   float64
}

// Total market averages, used when an industry has no row of its own.
const (
	DefaultEV_EBITDA = 18.53
	DefaultEV_EBIT   = 25.16
)

var industryMultiples = []industryMultiple{
	{"advertising", 11.52, 14.65},
	{"aerospace/defense", 19.24, 23.33},
	{"air transport", 7.82, 12.40},
	{"apparel", 12.56, 15.35},
	{"auto & truck", 5.50, 8.99},
	{"auto parts", 5.44, 9.73},
	{"beverage (alcoholic)", 9.70, 12.20},
	{"beverage (soft)", 13.19, 17.16},
	{"broadcasting", 7.87, 8.75},
	{"building materials", 13.90, 17.57},
	{"business & consumer services", 13.96, 18.16},
	{"cable tv", 7.25, 34.32},
	{"chemical (basic)", 15.89, 44.60},
	{"chemical (diversified)", 7.93, 23.12},
	{"chemical (specialty)", 15.23, 23.73},
	{"coal & related energy", 6.02, 5.81},
	{"computer services", 14.77, 17.42},
	{"computers/peripherals", 17.37, 20.48},
	{"construction supplies", 8.46, 11.31},
	{"diversified", 8.98, 8.11},
	{"drugs (pharmaceutical)", 12.70, 14.80},
	{"education", 14.98, 18.18},
	{"electrical equipment", 20.97, 25.35},
	{"electronics (general)", 14.86, 18.32},
	{"engineering/construction", 8.56, 12.15},
	{"entertainment", 33.45, 52.74},
	{"environmental & waste services", 9.41, 14.41},
	{"farming/agriculture", 9.16, 13.58},
	{"financial svcs. (non-bank & insurance)", 79.73, 88.79},
	{"food processing", 11.38, 15.30},
	{"food wholesalers", 8.18, 20.70},
	{"furn/home furnishings", 9.54, 23.01},
	{"green & renewable energy", 11.23, 18.44},
	{"healthcare products", 18.96, 26.70},
	{"healthcare support services", 13.04, 18.14},
	{"heathcare information and technology", 18.83, 30.25},
	{"homebuilding", 10.00, 11.20},
	{"hospitals/healthcare facilities", 15.20, 29.72},
	{"hotel/gaming", 13.76, 18.14},
	{"household products", 15.31, 16.89},
	{"information services", 5.97, 8.61},
	{"insurance (general)", 8.52, 7.41},
	{"insurance (life)", 11.91, 10.90},
	{"insurance (prop/cas.)", 12.67, 11.00},
	{"investments & asset management", 17.05, 14.70},
	{"machinery", 12.80, 16.16},
	{"metals & mining", 5.51, 9.01},
	{"office equipment & services", 6.45, 9.08},
	{"oil/gas (integrated)", 3.28, 5.96},
	{"oil/gas (production and exploration)", 2.33, 4.09},
	{"oil/gas distribution", 6.35, 8.82},
	{"oilfield svcs/equip.", 3.19, 6.32},
	{"packaging & container", 11.20, 19.42},
	{"paper/forest products", 10.45, 15.15},
	{"power", 6.86, 10.51},
	{"precious metals", 6.84, 19.60},
	{"publishing & newspapers", 10.56, 15.80},
	{"r.e.i.t.", 22.98, 22.34},
	{"real estate (development)", 26.73, 81.05},
	{"real estate (general/diversified)", 34.05, 45.85},
	{"real estate (operations & services)", 25.93, 25.65},
	{"recreation", 11.17, 15.97},
	{"reinsurance", 9.37, 8.91},
	{"restaurant/dining", 17.29, 24.44},
	{"retail (automotive)", 8.17, 19.16},
	{"retail (building supply)", 8.83, 11.35},
	{"retail (distributors)", 11.62, 15.75},
	{"retail (general)", 22.33, 31.66},
	{"retail (grocery and food)", 8.99, 13.86},
	{"retail (reits)", 18.88, 17.95},
	{"retail (special lines)", 15.44, 18.41},
	{"rubber& tires", 5.51, 8.63},
	{"semiconductor", 8.09, 14.70},
	{"semiconductor equip", 24.90, 30.99},
	{"shipbuilding & marine", 6.40, 9.99},
	{"shoe", 21.18, 26.32},
	{"software (entertainment)", 15.84, 21.64},
	{"software (internet)", 10.62, 21.61},
	{"software (system & application)", 32.83, 33.47},
	{"steel", 4.63, 27.19},
	{"telecom (wireless)", 7.44, 13.49},
	{"telecom. equipment", 8.92, 12.59},
	{"telecom. services", 7.11, 13.46},
	{"tobacco", 7.18, 8.61},
	{"transportation", 11.31, 14.95},
	{"transportation (railroads)", 13.87, 21.24},
	{"trucking", 8.12, 12.66},
	{"utility (general)", 5.91, 9.69},
	{"utility (water)", 18.11, 28.94},
}

// IndustryMultiples returns the EV/EBITDA and EV/EBIT multiples for an
// industry. Matching is substring-based in both directions so that a loose
// LLM label like "Diversified Chemical Manufacturer" lands on the
// "chemical (diversified)" row. Unknown industries fall back to the total
// market averages.
func IndustryMultiples(industry string) (evEBITDA, evEBIT float64) {
	normalized := strings.ToLower(strings.TrimSpace(industry))
	if normalized == "" {
		normalized = "unknown"
	}
	for _, m := range industryMultiples {
		if strings.Contains(m.Industry, normalized) || strings.Contains(normalized, m.Industry) {
			return m.EV_EBITDA, m.EV_EBIT
		}
	}
	return DefaultEV_EBITDA, DefaultEV_EBIT
}

// Czech annual CPI inflation. The multiples are January 2025 data, so
// historical figures are compounded forward through end of 2024.
var czechInflation = map[int]float64{
	2019: 0.028,
	2020: 0.032,
	2021: 0.038,
	2022: 0.151,
	2023: 0.107,
	2024: 0.024,
}

const multiplesTargetYear = 2025

// AdjustToTargetYear compounds an amount from its base year forward to the
// multiples' reference year using Czech CPI. Years with no CPI row use the
// table average. Amounts from the target year or later pass through.
func AdjustToTargetYear(baseYear int, amount float64) float64 {
	if baseYear >= multiplesTargetYear {
		return amount
	}
	factor := 1.0
	for year := baseYear + 1; year <= multiplesTargetYear; year++ {
		rate, ok := czechInflation[year]
		if !ok {
			rate = averageInflation()
		}
		factor *= 1 + rate
	}
	return amount * factor
}

func averageInflation() float64 {
	total := 0.0
	for _, rate := range czechInflation {
		total += rate
	}
	return total / float64(len(czechInflation))
}
