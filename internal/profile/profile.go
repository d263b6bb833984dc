package profile

import (
	"fmt"
	"strings"
)

// UserProfile holds the business profile the matching core works with.
// The core treats it as read-only; on login/logout the whole record is
// swapped, never partially mutated.
type UserProfile struct {
	Name          string `json:"name"`
	Company       string `json:"company"`
	KvK           string `json:"kvk"`
	Email         string `json:"email,omitempty"`
	Location      string `json:"location"`
	EmployeeCount int    `json:"employee_count"`
	AnnualRevenue int64  `json:"annual_revenue"`
	Sector        string `json:"sector"`
	BusinessKind  string `json:"business_kind"`
}

// InvalidProfileError reports which identity-critical fields are missing
// or out of range. Matching must not guess defaults for these.
type InvalidProfileError struct {
	Fields []string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s", strings.Join(e.Fields, ", "))
}

// Validate checks the identity-critical fields (location, sector, employee
// count, annual revenue) and fails fast when any is unusable.
func (p *UserProfile) Validate() error {
	var fields []string

	if strings.TrimSpace(p.Location) == "" {
		fields = append(fields, "location is required")
	}
	if strings.TrimSpace(p.Sector) == "" {
		fields = append(fields, "sector is required")
	}
	if p.EmployeeCount < 0 {
		fields = append(fields, "employee_count must be non-negative")
	}
	if p.AnnualRevenue < 0 {
		fields = append(fields, "annual_revenue must be non-negative")
	}

	if len(fields) > 0 {
		return &InvalidProfileError{Fields: fields}
	}
	return nil
}
