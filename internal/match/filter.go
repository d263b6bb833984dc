package match

import (
	"strings"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/profile"
)

// FacetMatcher tests a program against the set facets and reports how many
// facets are active and how many of those the program satisfies. Two
// strategies exist: keyword matching against free-text catalogs and field
// matching against structured catalogs. A filtering pass uses exactly one.
type FacetMatcher interface {
	Matches(p *catalog.Program, f FacetFilters) (active, satisfied int)
}

// Filter returns the programs the user is eligible for, as an
// order-preserving subsequence of the catalog. It applies the four hard
// rules first, then facet narrowing when at least one facet is set.
//
// A program passes facet narrowing when it satisfies at least one active
// facet (OR semantics). AND semantics would filter the small demo catalog
// down to zero results for most combinations.
func Filter(programs []catalog.Program, user profile.UserProfile, facets FacetFilters, matcher FacetMatcher) ([]catalog.Program, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	var filtered []catalog.Program
	for i := range programs {
		p := &programs[i]
		if !Eligible(p, user) {
			continue
		}

		active, satisfied := matcher.Matches(p, facets)
		if active > 0 && satisfied == 0 {
			continue
		}

		filtered = append(filtered, *p)
	}
	return filtered, nil
}

// Eligible applies the four hard-eligibility rules. An absent or empty
// location or sector set means the program is open everywhere, and to
// every sector: the permissive default.
func Eligible(p *catalog.Program, user profile.UserProfile) bool {
	if len(p.Locations) > 0 && !p.HasLocation(user.Location) {
		return false
	}
	if p.MaxEmployees != nil && user.EmployeeCount > *p.MaxEmployees {
		return false
	}
	if p.MinEmployees != nil && user.EmployeeCount < *p.MinEmployees {
		return false
	}
	// Grants larger than the business's revenue footprint are not
	// recommended. A heuristic proxy, not a real funding rule.
	if p.FundingAmount != nil && *p.FundingAmount > user.AnnualRevenue {
		return false
	}
	if len(p.Sectors) > 0 && !p.HasSector(user.Sector) {
		return false
	}
	return true
}

// KeywordMatcher tests facets against the program's concatenated text
// using the fixed facet keyword taxonomy.
type KeywordMatcher struct{}

func (KeywordMatcher) Matches(p *catalog.Program, f FacetFilters) (active, satisfied int) {
	text := p.SearchText()

	check := func(keywords []string) {
		active++
		if containsAny(text, keywords) {
			satisfied++
		}
	}

	if f.IncomeLevel != "" {
		check(incomeKeywords[f.IncomeLevel])
	}
	if f.FilingStatus != "" {
		check(filingKeywords[f.FilingStatus])
	}
	if f.HouseholdSize != "" {
		check(householdKeywords[f.HouseholdSize])
	}
	if f.AgeRange != "" {
		check(ageKeywords[f.AgeRange])
	}
	if f.EmploymentStatus != "" {
		check(employmentKeywords[f.EmploymentStatus])
	}
	if f.ExpenseType != "" {
		check(expenseKeywords[f.ExpenseType])
	}
	return active, satisfied
}

// StructuredMatcher tests facets against the program's structured
// eligibility fields. A program that omits a field is unconstrained on
// that facet and satisfies it.
type StructuredMatcher struct{}

func (StructuredMatcher) Matches(p *catalog.Program, f FacetFilters) (active, satisfied int) {
	check := func(ok bool) {
		active++
		if ok {
			satisfied++
		}
	}

	if f.IncomeLevel != "" {
		check(p.IncomeRequirement == "" || strings.EqualFold(p.IncomeRequirement, string(f.IncomeLevel)))
	}
	if f.FilingStatus != "" {
		check(len(p.FilingStatus) == 0 || containsFold(p.FilingStatus, string(f.FilingStatus)))
	}
	if f.HouseholdSize != "" {
		check(householdInRange(p, f.HouseholdSize))
	}
	if f.AgeRange != "" {
		check(p.AgeRequirement == "" || p.AgeRequirement == "all" ||
			strings.EqualFold(p.AgeRequirement, string(f.AgeRange)))
	}
	if f.EmploymentStatus != "" {
		check(len(p.EmploymentStatus) == 0 || containsFold(p.EmploymentStatus, string(f.EmploymentStatus)))
	}
	if f.ExpenseType != "" {
		check(len(p.EligibleExpenses) == 0 || containsFold(p.EligibleExpenses, string(f.ExpenseType)))
	}
	return active, satisfied
}

func householdInRange(p *catalog.Program, size HouseholdSize) bool {
	if p.MinHouseholdSize == nil && p.MaxHouseholdSize == nil {
		return true
	}
	n := householdCount(size)
	if p.MinHouseholdSize != nil && n < *p.MinHouseholdSize {
		return false
	}
	if p.MaxHouseholdSize != nil && n > *p.MaxHouseholdSize {
		return false
	}
	return true
}

func householdCount(size HouseholdSize) int {
	switch size {
	case Household1:
		return 1
	case Household2:
		return 2
	case Household3:
		return 3
	case Household4:
		return 4
	case Household5Plus:
		return 5
	}
	return 0
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
