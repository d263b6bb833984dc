package match

import "strings"

// Facet keyword taxonomy. Each set facet value maps to a small list of
// substrings tested case-insensitively against a program's search text.
// The lists mix Dutch and English because the catalog text does too.

var incomeKeywords = map[IncomeLevel][]string{
	IncomeLow:    {"laag inkomen", "minima", "inkomenssteun", "toeslag", "low income"},
	IncomeMedium: {"midden inkomen", "middeninkomen", "modaal", "middle income"},
	IncomeHigh:   {"hoog inkomen", "vermogend", "high income"},
}

var filingKeywords = map[FilingStatus][]string{
	FilingIndividual: {"particulier", "eenmanszaak", "natuurlijk persoon", "individual"},
	FilingBusiness:   {"bedrijf", "onderneming", "bv", "vennootschap", "business"},
	FilingNonProfit:  {"stichting", "vereniging", "non-profit", "goede doel"},
}

var householdKeywords = map[HouseholdSize][]string{
	Household1:     {"alleenstaand", "eenpersoons", "single"},
	Household2:     {"tweepersoons", "partner", "huishouden"},
	Household3:     {"gezin", "huishouden", "kinderen"},
	Household4:     {"gezin", "huishouden", "kinderen"},
	Household5Plus: {"groot gezin", "gezinnen", "huishouden"},
}

var ageKeywords = map[AgeRange][]string{
	AgeYoung:    {"jong", "starter", "student", "young"},
	AgeMiddle:   {"ervaren", "gevestigd", "doorgroei"},
	AgeSenior:   {"senior", "50+", "oudere"},
	AgeDisabled: {"beperking", "arbeidsbeperking", "inclusief", "toegankelijk"},
}

var employmentKeywords = map[EmploymentStatus][]string{
	EmploymentEmployed:     {"werknemer", "personeel", "in dienst"},
	EmploymentUnemployed:   {"werkzoekend", "werkloos", "re-integratie"},
	EmploymentSelfEmployed: {"zzp", "zelfstandig", "ondernemer"},
	EmploymentStudent:      {"student", "opleiding", "stage"},
}

var expenseKeywords = map[ExpenseType][]string{
	ExpenseBusiness:  {"bedrijfskosten", "investering", "exploitatie"},
	ExpensePersonal:  {"persoonlijke kosten", "levensonderhoud", "particuliere uitgaven"},
	ExpenseEquipment: {"apparatuur", "machines", "equipment", "installatie"},
	ExpenseTraining:  {"opleiding", "training", "scholing", "cursus"},
	ExpenseResearch:  {"onderzoek", "ontwikkeling", "r&d", "innovatie"},
}

// Scoring signal keyword sets (see KeywordScorer).

var smeKeywords = []string{"mkb", "sme", "kleinbedrijf", "midden- en kleinbedrijf", "ondernemers"}

var sectorKeywords = map[string][]string{
	"government & leadership": {"bestuur", "governance", "overheid", "leiderschap", "publiek"},
	"technology":              {"innovatie", "digitaal", "technologie", "ict", "software"},
	"manufacturing":           {"productie", "maakindustrie", "fabricage", "industrie"},
	"agriculture":             {"landbouw", "agrarisch", "agri", "teelt"},
	"energy":                  {"energie", "duurzaam", "warmte", "klimaat"},
	"healthcare":              {"zorg", "gezondheid", "medisch", "welzijn"},
}

var growthKeywords = []string{"groei", "opschalen", "scale", "middelgroot", "uitbreiding"}

var largeRevenueKeywords = []string{"groot", "aanzienlijk", "substantieel", "omvangrijk"}

var supportKeywords = []string{"subsidie", "financiering", "ondersteuning", "regeling", "krediet", "support"}

// containsAny reports whether any keyword occurs as a case-insensitive
// substring of text. Text is expected to be lowercase already.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// sectorKeywordSet maps a free-text sector label to its scoring keywords.
// Sectors without a mapping contribute nothing to the score.
func sectorKeywordSet(sector string) []string {
	return sectorKeywords[strings.ToLower(sector)]
}
