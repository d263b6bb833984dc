package match

import (
	"strings"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/profile"
)

// MinScore is the floor applied to every match score. Programs shown to
// the user always display a plausible match percentage; a product
// decision carried over from the portal this replaces.
const MinScore = 25

// Scorer computes a match percentage between a program and a user
// profile. Scores range from MinScore to 100 and are used for ranking
// and display only, never as an eligibility gate.
type Scorer interface {
	Score(p *catalog.Program, user profile.UserProfile) int
}

// NewScorer returns the scorer strategy registered under the given name.
// Keyword scoring fits free-text catalogs; structural scoring fits
// catalogs with structured eligibility fields. The two are never mixed
// within one catalog.
func NewScorer(name string) (Scorer, bool) {
	switch name {
	case "keyword":
		return KeywordScorer{}, true
	case "structural":
		return StructuredScorer{}, true
	}
	return nil, false
}

// NewFacetMatcher returns the facet-matching strategy registered under
// the given name.
func NewFacetMatcher(name string) (FacetMatcher, bool) {
	switch name {
	case "keyword":
		return KeywordMatcher{}, true
	case "structured":
		return StructuredMatcher{}, true
	}
	return nil, false
}

// KeywordScorer accumulates up to five points from independent keyword
// signals against the program text, then converts to a percentage of the
// maximum and floors the result at MinScore.
type KeywordScorer struct{}

func (KeywordScorer) Score(p *catalog.Program, user profile.UserProfile) int {
	text := p.SearchText()
	score := 0

	// Business-kind signal.
	if user.BusinessKind == "SME" && containsAny(text, smeKeywords) {
		score++
	}

	// Sector-affinity signal; sectors without a keyword mapping
	// contribute nothing.
	if kws := sectorKeywordSet(user.Sector); kws != nil && containsAny(text, kws) {
		score++
	}

	// Size-band signal: mid-size businesses match growth language.
	if user.EmployeeCount >= 10 && user.EmployeeCount <= 50 && containsAny(text, growthKeywords) {
		score++
	}

	// Revenue-band signal.
	if user.AnnualRevenue >= 500000 && containsAny(text, largeRevenueKeywords) {
		score++
	}

	// Baseline signal: generic subsidy/support language, nearly always
	// present in real program text.
	if containsAny(text, supportKeywords) {
		score++
	}

	return floorScore(score * 100 / 5)
}

// StructuredScorer is the variant for catalogs with structured
// eligibility fields: five boolean field matches, no text keywords.
type StructuredScorer struct{}

func (StructuredScorer) Score(p *catalog.Program, user profile.UserProfile) int {
	score := 0

	if p.HasLocation(user.Location) {
		score++
	}
	if employeeRangeMatch(p, user.EmployeeCount) {
		score++
	}
	if p.FundingAmount != nil && *p.FundingAmount <= user.AnnualRevenue {
		score++
	}
	if p.HasSector(user.Sector) {
		score++
	}
	if strings.EqualFold(user.BusinessKind, "SME") && (p.SupportsSME == nil || *p.SupportsSME) {
		score++
	}

	return floorScore(score * 100 / 5)
}

func employeeRangeMatch(p *catalog.Program, count int) bool {
	if p.MinEmployees == nil && p.MaxEmployees == nil {
		return false
	}
	if p.MinEmployees != nil && count < *p.MinEmployees {
		return false
	}
	if p.MaxEmployees != nil && count > *p.MaxEmployees {
		return false
	}
	return true
}

func floorScore(pct int) int {
	if pct < MinScore {
		return MinScore
	}
	if pct > 100 {
		return 100
	}
	return pct
}
