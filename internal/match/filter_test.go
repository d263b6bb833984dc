package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/profile"
)

func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }

func testUser() profile.UserProfile {
	return profile.UserProfile{
		Name:          "King Arthur",
		Company:       "Camelot Enterprises B.V.",
		Location:      "Den Haag",
		EmployeeCount: 25,
		AnnualRevenue: 1200000,
		Sector:        "Government & Leadership",
		BusinessKind:  "SME",
	}
}

func TestEligible(t *testing.T) {
	user := testUser()

	tests := []struct {
		name    string
		program catalog.Program
		want    bool
	}{
		{
			name:    "no constraints matches everyone",
			program: catalog.Program{Name: "Open regeling"},
			want:    true,
		},
		{
			name:    "location match",
			program: catalog.Program{Name: "Haags", Locations: []string{"Den Haag"}},
			want:    true,
		},
		{
			name:    "location match is case-insensitive",
			program: catalog.Program{Name: "Haags", Locations: []string{"den haag"}},
			want:    true,
		},
		{
			name:    "wrong location excluded",
			program: catalog.Program{Name: "Rotterdams", Locations: []string{"Rotterdam"}},
			want:    false,
		},
		{
			name:    "too many employees excluded",
			program: catalog.Program{Name: "Micro", MaxEmployees: intPtr(10)},
			want:    false,
		},
		{
			name:    "too few employees excluded",
			program: catalog.Program{Name: "Groot", MinEmployees: intPtr(100)},
			want:    false,
		},
		{
			name:    "employee count within bounds",
			program: catalog.Program{Name: "MKB", MinEmployees: intPtr(10), MaxEmployees: intPtr(250)},
			want:    true,
		},
		{
			name:    "funding above revenue excluded",
			program: catalog.Program{Name: "Megasubsidie", FundingAmount: int64Ptr(5000000)},
			want:    false,
		},
		{
			name:    "funding within revenue",
			program: catalog.Program{Name: "Kleinsubsidie", FundingAmount: int64Ptr(50000)},
			want:    true,
		},
		{
			name:    "absent funding amount skips the rule",
			program: catalog.Program{Name: "Onbepaald"},
			want:    true,
		},
		{
			name:    "sector match",
			program: catalog.Program{Name: "Publiek", Sectors: []string{"Government & Leadership"}},
			want:    true,
		},
		{
			name:    "wrong sector excluded",
			program: catalog.Program{Name: "Agrarisch", Sectors: []string{"Agriculture"}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(&tt.program, user); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterInvalidProfile(t *testing.T) {
	programs := []catalog.Program{{Name: "A"}}
	user := testUser()
	user.Location = ""
	user.Sector = "  "

	_, err := Filter(programs, user, FacetFilters{}, KeywordMatcher{})
	if err == nil {
		t.Fatal("expected error for invalid profile")
	}

	var invalid *profile.InvalidProfileError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidProfileError, got %T", err)
	}
	if len(invalid.Fields) != 2 {
		t.Errorf("expected 2 invalid fields, got %d: %v", len(invalid.Fields), invalid.Fields)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	programs := []catalog.Program{
		{Name: "Eerste"},
		{Name: "Rotterdams", Locations: []string{"Rotterdam"}},
		{Name: "Tweede"},
		{Name: "Derde"},
	}

	got, err := Filter(programs, testUser(), FacetFilters{}, KeywordMatcher{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	want := []string{"Eerste", "Tweede", "Derde"}
	var names []string
	for i := range got {
		names = append(names, got[i].Name)
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected order %v, got %v", want, names)
	}
}

func TestFilterIdempotent(t *testing.T) {
	programs := []catalog.Program{
		{Name: "Open"},
		{Name: "Micro", MaxEmployees: intPtr(10)},
		{Name: "Haags", Locations: []string{"Den Haag"}},
	}

	once, err := Filter(programs, testUser(), FacetFilters{}, KeywordMatcher{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	twice, err := Filter(once, testUser(), FacetFilters{}, KeywordMatcher{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering a filtered result changed it: %v vs %v", once, twice)
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	got, err := Filter(nil, testUser(), FacetFilters{}, KeywordMatcher{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d programs", len(got))
	}
}

func TestKeywordMatcherFacets(t *testing.T) {
	training := catalog.Program{
		Name:        "SLIM",
		Description: "Subsidie voor scholing en training van personeel.",
	}
	research := catalog.Program{
		Name:        "MIT",
		Description: "Ondersteuning voor onderzoek en innovatie.",
	}

	tests := []struct {
		name          string
		program       catalog.Program
		facets        FacetFilters
		wantActive    int
		wantSatisfied int
	}{
		{
			name:          "no facets set",
			program:       training,
			facets:        FacetFilters{},
			wantActive:    0,
			wantSatisfied: 0,
		},
		{
			name:          "matching expense facet",
			program:       training,
			facets:        FacetFilters{ExpenseType: ExpenseTraining},
			wantActive:    1,
			wantSatisfied: 1,
		},
		{
			name:          "non-matching expense facet",
			program:       training,
			facets:        FacetFilters{ExpenseType: ExpenseResearch},
			wantActive:    1,
			wantSatisfied: 0,
		},
		{
			name:          "one of two facets satisfied",
			program:       research,
			facets:        FacetFilters{ExpenseType: ExpenseResearch, IncomeLevel: IncomeLow},
			wantActive:    2,
			wantSatisfied: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, satisfied := KeywordMatcher{}.Matches(&tt.program, tt.facets)
			if active != tt.wantActive || satisfied != tt.wantSatisfied {
				t.Errorf("Matches() = (%d, %d), want (%d, %d)",
					active, satisfied, tt.wantActive, tt.wantSatisfied)
			}
		})
	}
}

func TestFilterFacetOrSemantics(t *testing.T) {
	programs := []catalog.Program{
		{Name: "Training", Description: "Subsidie voor opleiding en training."},
		{Name: "Onderzoek", Description: "Subsidie voor onderzoek en innovatie."},
		{Name: "Algemeen", Description: "Algemene ondersteuning."},
	}

	// One of the two facets satisfied is enough for inclusion.
	facets := FacetFilters{ExpenseType: ExpenseTraining, IncomeLevel: IncomeLow}
	got, err := Filter(programs, testUser(), facets, KeywordMatcher{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}

	if len(got) != 1 || got[0].Name != "Training" {
		t.Errorf("expected only Training to pass, got %v", got)
	}
}

func TestStructuredMatcher(t *testing.T) {
	sme := true
	program := catalog.Program{
		Name:              "Gestructureerd",
		IncomeRequirement: "low",
		FilingStatus:      []string{"business"},
		MinHouseholdSize:  intPtr(2),
		MaxHouseholdSize:  intPtr(4),
		AgeRequirement:    "all",
		EmploymentStatus:  []string{"self-employed"},
		SupportsSME:       &sme,
	}

	tests := []struct {
		name          string
		facets        FacetFilters
		wantActive    int
		wantSatisfied int
	}{
		{
			name:          "income requirement match",
			facets:        FacetFilters{IncomeLevel: IncomeLow},
			wantActive:    1,
			wantSatisfied: 1,
		},
		{
			name:          "income requirement mismatch",
			facets:        FacetFilters{IncomeLevel: IncomeHigh},
			wantActive:    1,
			wantSatisfied: 0,
		},
		{
			name:          "household size in range",
			facets:        FacetFilters{HouseholdSize: Household3},
			wantActive:    1,
			wantSatisfied: 1,
		},
		{
			name:          "household size out of range",
			facets:        FacetFilters{HouseholdSize: Household5Plus},
			wantActive:    1,
			wantSatisfied: 0,
		},
		{
			name:          "age requirement all is permissive",
			facets:        FacetFilters{AgeRange: AgeSenior},
			wantActive:    1,
			wantSatisfied: 1,
		},
		{
			name:          "absent expense field is unconstrained",
			facets:        FacetFilters{ExpenseType: ExpenseEquipment},
			wantActive:    1,
			wantSatisfied: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, satisfied := StructuredMatcher{}.Matches(&program, tt.facets)
			if active != tt.wantActive || satisfied != tt.wantSatisfied {
				t.Errorf("Matches() = (%d, %d), want (%d, %d)",
					active, satisfied, tt.wantActive, tt.wantSatisfied)
			}
		})
	}
}
