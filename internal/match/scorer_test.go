package match

import (
	"testing"

	"github.com/ondernemersloket/loket/internal/catalog"
)

func TestNewScorer(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"keyword", true},
		{"structural", true},
		{"structured", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := NewScorer(tt.name); ok != tt.ok {
			t.Errorf("NewScorer(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestNewFacetMatcher(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"keyword", true},
		{"structured", true},
		{"structural", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := NewFacetMatcher(tt.name); ok != tt.ok {
			t.Errorf("NewFacetMatcher(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestKeywordScorerBounds(t *testing.T) {
	user := testUser()

	// Program text without any scoring keywords still floors at MinScore.
	empty := catalog.Program{Name: "Leeg", Description: "Niets bijzonders."}
	if got := (KeywordScorer{}).Score(&empty, user); got != MinScore {
		t.Errorf("expected floor score %d, got %d", MinScore, got)
	}

	// All five signals present caps at 100.
	full := catalog.Program{
		Name: "Alles",
		Description: "Subsidie voor het MKB met focus op bestuur en overheid. " +
			"Groei en opschalen voor middelgrote bedrijven met een groot, " +
			"aanzienlijk investeringsplan.",
	}
	if got := (KeywordScorer{}).Score(&full, user); got != 100 {
		t.Errorf("expected full score 100, got %d", got)
	}
}

func TestKeywordScorerSignals(t *testing.T) {
	user := testUser()

	tests := []struct {
		name    string
		program catalog.Program
		want    int
	}{
		{
			name:    "support signal only",
			program: catalog.Program{Name: "A", Description: "Een subsidie voor iedereen."},
			want:    MinScore, // 1/5 = 20, floored to 25
		},
		{
			name:    "support and sme signals",
			program: catalog.Program{Name: "B", Description: "Subsidie voor het MKB."},
			want:    40, // 2/5
		},
		{
			name: "support, sme and sector signals",
			program: catalog.Program{
				Name:        "C",
				Description: "Subsidie voor het MKB in publiek bestuur.",
			},
			want: 60, // 3/5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (KeywordScorer{}).Score(&tt.program, user); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeywordScorerIgnoresSignalsForOtherProfiles(t *testing.T) {
	program := catalog.Program{Name: "MKB", Description: "Subsidie voor het MKB."}

	// A non-SME business does not collect the SME signal.
	user := testUser()
	user.BusinessKind = "large"
	if got := (KeywordScorer{}).Score(&program, user); got != MinScore {
		t.Errorf("expected %d for non-SME profile, got %d", MinScore, got)
	}
}

func TestStructuredScorer(t *testing.T) {
	user := testUser()
	sme := true
	noSme := false

	tests := []struct {
		name    string
		program catalog.Program
		want    int
	}{
		{
			name:    "no structured fields floors",
			program: catalog.Program{Name: "Leeg"},
			// SME signal still fires: absent supports_sme is permissive.
			want: MinScore,
		},
		{
			name: "all five fields match",
			program: catalog.Program{
				Name:          "Vol",
				Locations:     []string{"Den Haag"},
				MinEmployees:  intPtr(10),
				MaxEmployees:  intPtr(250),
				FundingAmount: int64Ptr(100000),
				Sectors:       []string{"Government & Leadership"},
				SupportsSME:   &sme,
			},
			want: 100,
		},
		{
			name: "three of five fields match",
			program: catalog.Program{
				Name:          "Deels",
				Locations:     []string{"Den Haag"},
				FundingAmount: int64Ptr(100000),
				SupportsSME:   &sme,
			},
			want: 60,
		},
		{
			name: "explicit no-sme drops the signal",
			program: catalog.Program{
				Name:        "GrootBedrijf",
				Locations:   []string{"Den Haag"},
				SupportsSME: &noSme,
			},
			want: MinScore, // 1/5 = 20, floored
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (StructuredScorer{}).Score(&tt.program, user); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFloorScore(t *testing.T) {
	tests := []struct {
		pct  int
		want int
	}{
		{0, MinScore},
		{20, MinScore},
		{25, 25},
		{60, 60},
		{100, 100},
		{120, 100},
	}

	for _, tt := range tests {
		if got := floorScore(tt.pct); got != tt.want {
			t.Errorf("floorScore(%d) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}
