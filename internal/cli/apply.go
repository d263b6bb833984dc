package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/database"
	"github.com/ondernemersloket/loket/internal/match"
	"github.com/ondernemersloket/loket/internal/output"
)

var applyCmd = &cobra.Command{
	Use:   "apply <program>",
	Short: "Submit an application for a program",
	Long: `Apply submits an application for a matching program. The program
must be in the current match results; applying to a program the profile is
not eligible for is rejected.

Examples:
  loket apply "MKB Innovatiestimulering"
  loket apply "MIT" --note="Aanvraag voor fase 2"`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List submitted applications",
	RunE:  runApplications,
}

var applyNote string

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(applicationsCmd)

	applyCmd.Flags().StringVar(&applyNote, "note", "", "Optional note for the application")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	programs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	user, db, err := loadProfile(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	matcher, ok := match.NewFacetMatcher(cfg.Matching.FacetMatcher)
	if !ok {
		return fmt.Errorf("unknown facet matcher: %s", cfg.Matching.FacetMatcher)
	}
	scorer, ok := match.NewScorer(cfg.Matching.Scorer)
	if !ok {
		return fmt.Errorf("unknown scorer: %s", cfg.Matching.Scorer)
	}

	results, _, err := match.Rank(programs, user, match.FacetFilters{}, matcher, scorer)
	if err != nil {
		return err
	}

	var found *match.Result
	for i := range results {
		if strings.EqualFold(results[i].Program.DisplayName(), name) {
			found = &results[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("program not found or not eligible: %s", name)
	}

	record := profileToRecord(user)
	if err := db.SaveCompanyProfile(ctx, record); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	app := &database.Application{
		ProfileID:   record.ID,
		ProgramName: found.Program.DisplayName(),
		Score:       found.Score,
	}
	if applyNote != "" {
		app.Note = &applyNote
	}
	if err := db.CreateApplication(ctx, app); err != nil {
		return fmt.Errorf("failed to submit application: %w", err)
	}

	fmt.Printf("Application submitted for %s (match %d%%)\n", app.ProgramName, app.Score)
	return nil
}

func runApplications(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	user, db, err := loadProfile(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	record, err := db.GetCompanyProfileByKvK(ctx, user.KvK)
	if err != nil {
		return err
	}
	if record == nil {
		fmt.Println("No applications submitted yet.")
		return nil
	}

	apps, err := db.ListApplications(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}

	return output.Output(outputFmt, apps)
}
