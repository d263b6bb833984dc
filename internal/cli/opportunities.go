package cli

import (
	"github.com/spf13/cobra"

	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/opportunity"
	"github.com/ondernemersloket/loket/internal/output"
)

var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities",
	Short: "List regional opportunities for your location",
	RunE:  runOpportunities,
}

var opportunitiesCity string

func init() {
	rootCmd.AddCommand(opportunitiesCmd)

	opportunitiesCmd.Flags().StringVar(&opportunitiesCity, "city", "", "Municipality (default: profile location)")
}

func runOpportunities(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	city := opportunitiesCity
	if city == "" {
		user, db, err := loadProfile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		db.Close()
		city = user.Location
	}

	return output.Output(outputFmt, opportunity.ForCity(city))
}
