package catalog

import "strings"

// Program represents a single subsidy or grant program from the catalog.
// Most eligibility fields are optional: a missing field means the program
// places no constraint on that dimension.
type Program struct {
	Name        string `json:"name,omitempty"`
	ShortName   string `json:"short_name,omitempty"`
	LongName    string `json:"long_name,omitempty"`
	Description string `json:"description"`

	FundingAmount *int64   `json:"funding_amount,omitempty"`
	Locations     []string `json:"locations,omitempty"`
	Sectors       []string `json:"sectors,omitempty"`
	MaxEmployees  *int     `json:"max_employees,omitempty"`
	MinEmployees  *int     `json:"min_employees,omitempty"`

	Criteria []string `json:"criteria,omitempty"`
	Benefits []string `json:"benefits,omitempty"`

	Contact  string `json:"contact,omitempty"`
	Deadline string `json:"deadline,omitempty"`

	// Structured facet fields, present only in catalogs that use the
	// structured schema instead of free-text criteria.
	IncomeRequirement string   `json:"income_requirement,omitempty"`
	FilingStatus      []string `json:"filing_status,omitempty"`
	MinHouseholdSize  *int     `json:"min_household_size,omitempty"`
	MaxHouseholdSize  *int     `json:"max_household_size,omitempty"`
	AgeRequirement    string   `json:"age_requirement,omitempty"`
	EmploymentStatus  []string `json:"employment_status,omitempty"`
	EligibleExpenses  []string `json:"eligible_expenses,omitempty"`
	SupportsSME       *bool    `json:"supports_sme,omitempty"`
}

// DisplayName returns the first non-empty display identifier.
func (p *Program) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.LongName
}

// SearchText returns the lowercase concatenation of the program's name,
// description, criteria and benefits. All keyword matching runs against
// this single string.
func (p *Program) SearchText() string {
	var b strings.Builder
	b.WriteString(p.DisplayName())
	b.WriteString(" ")
	b.WriteString(p.Description)
	for _, c := range p.Criteria {
		b.WriteString(" ")
		b.WriteString(c)
	}
	for _, bn := range p.Benefits {
		b.WriteString(" ")
		b.WriteString(bn)
	}
	return strings.ToLower(b.String())
}

// HasLocation reports whether the program restricts eligibility to the
// given city. An empty location set means no restriction.
func (p *Program) HasLocation(city string) bool {
	for _, loc := range p.Locations {
		if strings.EqualFold(loc, city) {
			return true
		}
	}
	return false
}

// HasSector reports whether the program's sector set contains the given
// sector label. An empty sector set means no restriction.
func (p *Program) HasSector(sector string) bool {
	for _, s := range p.Sectors {
		if strings.EqualFold(s, sector) {
			return true
		}
	}
	return false
}
