package opportunity

import "strings"

// Opportunity is a regional business development lead shown alongside the
// subsidy results. These are curated per municipality, not matched.
type Opportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	Category    string `json:"category"`
	Contact     string `json:"contact"`
}

var byCity = map[string][]Opportunity{
	"den haag": {
		{
			Title:       "Warmtenet Den Haag Zuidwest",
			Description: "Aansluitkansen voor lokale installatie- en bouwbedrijven bij de uitrol van het warmtenet in Den Haag Zuidwest.",
			City:        "Den Haag",
			Category:    "Energy",
			Contact:     "warmtenet@denhaag.nl",
		},
		{
			Title:       "ImpactCity startup programma",
			Description: "Matchmaking en huisvesting voor ondernemingen die werken aan maatschappelijke innovatie in de Haagse binnenstad.",
			City:        "Den Haag",
			Category:    "Innovation",
			Contact:     "info@impactcity.nl",
		},
		{
			Title:       "Aanbesteding gemeentelijk wagenparkonderhoud",
			Description: "De gemeente zoekt regionale MKB-partijen voor het onderhoud van het elektrische wagenpark.",
			City:        "Den Haag",
			Category:    "Procurement",
			Contact:     "inkoop@denhaag.nl",
		},
	},
	"amsterdam": {
		{
			Title:       "Warmtenetwerk Amsterdam Noord",
			Description: "Deelname aan het consortium voor de aanleg van het warmtenetwerk in Amsterdam Noord.",
			City:        "Amsterdam",
			Category:    "Energy",
			Contact:     "warmte@amsterdam.nl",
		},
		{
			Title:       "Haven circulaire economie hub",
			Description: "Bedrijfsruimte en cofinanciering voor circulaire maakbedrijven in het havengebied.",
			City:        "Amsterdam",
			Category:    "Circular",
			Contact:     "circulair@portofamsterdam.com",
		},
	},
}

// ForCity returns the curated opportunities for a municipality, matched
// case-insensitively. Unknown cities get an empty list, not an error.
func ForCity(city string) []Opportunity {
	return byCity[strings.ToLower(strings.TrimSpace(city))]
}
