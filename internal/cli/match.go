package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/match"
	"github.com/ondernemersloket/loket/internal/output"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match the current profile against the catalog",
	Long: `Match runs the full pipeline: hard eligibility filtering, facet
narrowing and match scoring, then prints the ranked results.

Examples:
  loket match                          # All matching programs, ranked
  loket match --expense=training       # Narrow to training-related programs
  loket match --income=low --age=young # Multiple facets (OR semantics)
  loket match --page=2 --size=5        # Page through results
  loket match -o json                  # Output as JSON`,
	RunE: runMatch,
}

var (
	matchIncome     string
	matchFiling     string
	matchHousehold  string
	matchAge        string
	matchEmployment string
	matchExpense    string
	matchPage       int
	matchSize       int
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchIncome, "income", "", "Income level facet (low, medium, high)")
	matchCmd.Flags().StringVar(&matchFiling, "filing", "", "Filing status facet (individual, business, non-profit)")
	matchCmd.Flags().StringVar(&matchHousehold, "household", "", "Household size facet (1-4, 5+)")
	matchCmd.Flags().StringVar(&matchAge, "age", "", "Age range facet (young, middle, senior, disabled)")
	matchCmd.Flags().StringVar(&matchEmployment, "employment", "", "Employment status facet (employed, unemployed, self-employed, student)")
	matchCmd.Flags().StringVar(&matchExpense, "expense", "", "Expense type facet (business, personal, equipment, training, research)")
	matchCmd.Flags().IntVar(&matchPage, "page", 1, "Result page (1-based)")
	matchCmd.Flags().IntVar(&matchSize, "size", 0, "Page size (0 = all results)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	facets := match.FacetFilters{
		IncomeLevel:      match.IncomeLevel(matchIncome),
		FilingStatus:     match.FilingStatus(matchFiling),
		HouseholdSize:    match.HouseholdSize(matchHousehold),
		AgeRange:         match.AgeRange(matchAge),
		EmploymentStatus: match.EmploymentStatus(matchEmployment),
		ExpenseType:      match.ExpenseType(matchExpense),
	}

	results, summary, err := match.Rank(programs, user, facets, matcher, scorer)
	if err != nil {
		return err
	}

	page := match.Paginate(results, matchPage, matchSize)
	if err := output.Output(outputFmt, page); err != nil {
		return err
	}

	if outputFmt == "table" || outputFmt == "" {
		return output.Table(summary)
	}
	return nil
}
