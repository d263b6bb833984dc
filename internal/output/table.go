package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/database"
	"github.com/ondernemersloket/loket/internal/match"
	"github.com/ondernemersloket/loket/internal/opportunity"
	"github.com/ondernemersloket/loket/internal/profile"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []match.Result:
		return resultsTable(w, v)
	case []catalog.Program:
		return programsTable(w, v)
	case match.Summary:
		return summaryTable(w, v)
	case *profile.UserProfile:
		return profileDetail(w, v)
	case []opportunity.Opportunity:
		return opportunitiesTable(w, v)
	case []database.Application:
		return applicationsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func resultsTable(w io.Writer, results []match.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching programs found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Program", "Match", "Funding", "Deadline")
	for _, r := range results {
		if err := table.Append([]string{
			truncate(r.Program.DisplayName(), 40),
			fmt.Sprintf("%d%%", r.Score),
			formatFunding(r.Program.FundingAmount),
			valueOr(r.Program.Deadline, "ongoing"),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func programsTable(w io.Writer, programs []catalog.Program) error {
	if len(programs) == 0 {
		fmt.Fprintln(w, "The catalog is empty.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Program", "Locations", "Sectors", "Funding")
	for i := range programs {
		p := &programs[i]
		if err := table.Append([]string{
			truncate(p.DisplayName(), 40),
			listOr(p.Locations, "all"),
			listOr(p.Sectors, "all"),
			formatFunding(p.FundingAmount),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func summaryTable(w io.Writer, s match.Summary) error {
	fmt.Fprintf(w, "Matched %d of %d programs (%d%%)\n", s.Matched, s.Total, s.Percent())
	return nil
}

func profileDetail(w io.Writer, p *profile.UserProfile) error {
	fmt.Fprintf(w, "Name:        %s\n", p.Name)
	fmt.Fprintf(w, "Company:     %s\n", p.Company)
	if p.KvK != "" {
		fmt.Fprintf(w, "KvK:         %s\n", p.KvK)
	}
	if p.Email != "" {
		fmt.Fprintf(w, "Email:       %s\n", p.Email)
	}
	fmt.Fprintf(w, "Location:    %s\n", p.Location)
	fmt.Fprintf(w, "Employees:   %d\n", p.EmployeeCount)
	fmt.Fprintf(w, "Revenue:     %s\n", formatEuro(p.AnnualRevenue))
	fmt.Fprintf(w, "Sector:      %s\n", p.Sector)
	fmt.Fprintf(w, "Kind:        %s\n", p.BusinessKind)
	return nil
}

func opportunitiesTable(w io.Writer, opps []opportunity.Opportunity) error {
	if len(opps) == 0 {
		fmt.Fprintln(w, "No regional opportunities for this location.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Opportunity", "Category", "Contact")
	for _, o := range opps {
		if err := table.Append([]string{
			truncate(o.Title, 40),
			o.Category,
			o.Contact,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func applicationsTable(w io.Writer, apps []database.Application) error {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No applications submitted yet.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Program", "Score", "Status", "Submitted")
	for _, a := range apps {
		if err := table.Append([]string{
			truncate(a.ProgramName, 40),
			fmt.Sprintf("%d%%", a.Score),
			string(a.Status),
			a.CreatedAt.Format("Jan 02, 2006"),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func formatFunding(amount *int64) string {
	if amount == nil {
		return "varies"
	}
	return formatEuro(*amount)
}

// formatEuro renders an amount with thousands separators, Dutch style.
func formatEuro(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "€" + strings.Join(parts, ".")
}

func listOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
