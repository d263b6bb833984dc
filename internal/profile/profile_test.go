package profile

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*UserProfile)
		wantFields int
	}{
		{
			name:       "valid demo profile",
			modify:     func(p *UserProfile) {},
			wantFields: 0,
		},
		{
			name:       "missing location",
			modify:     func(p *UserProfile) { p.Location = "" },
			wantFields: 1,
		},
		{
			name:       "whitespace sector",
			modify:     func(p *UserProfile) { p.Sector = "   " },
			wantFields: 1,
		},
		{
			name:       "negative employee count",
			modify:     func(p *UserProfile) { p.EmployeeCount = -1 },
			wantFields: 1,
		},
		{
			name:       "negative revenue",
			modify:     func(p *UserProfile) { p.AnnualRevenue = -1 },
			wantFields: 1,
		},
		{
			name: "multiple problems reported together",
			modify: func(p *UserProfile) {
				p.Location = ""
				p.Sector = ""
				p.EmployeeCount = -5
			},
			wantFields: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Demo()
			tt.modify(&p)

			err := p.Validate()
			if tt.wantFields == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var invalid *InvalidProfileError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidProfileError, got %T", err)
			}
			if len(invalid.Fields) != tt.wantFields {
				t.Errorf("expected %d invalid fields, got %d: %v",
					tt.wantFields, len(invalid.Fields), invalid.Fields)
			}
		})
	}
}

func TestDemo(t *testing.T) {
	p := Demo()

	if p.Company != "Camelot Enterprises B.V." {
		t.Errorf("unexpected company: %s", p.Company)
	}
	if p.Location != "Den Haag" {
		t.Errorf("unexpected location: %s", p.Location)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("demo profile must validate, got %v", err)
	}
}
