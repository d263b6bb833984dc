package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/database"
	"github.com/ondernemersloket/loket/internal/output"
	"github.com/ondernemersloket/loket/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the company profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current company profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update company profile fields",
	Long: `Set updates fields of the stored company profile. Unset flags keep
their current value.

Examples:
  loket profile set --location="Den Haag" --employees=25
  loket profile set --revenue=1200000 --sector="Government & Leadership"`,
	RunE: runProfileSet,
}

var (
	profileName      string
	profileCompany   string
	profileEmail     string
	profileLocation  string
	profileEmployees int
	profileRevenue   int64
	profileSector    string
	profileKind      string
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Owner name")
	profileSetCmd.Flags().StringVar(&profileCompany, "company", "", "Company name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "Municipality")
	profileSetCmd.Flags().IntVar(&profileEmployees, "employees", -1, "Employee count")
	profileSetCmd.Flags().Int64Var(&profileRevenue, "revenue", -1, "Annual revenue in euros")
	profileSetCmd.Flags().StringVar(&profileSector, "sector", "", "Business sector")
	profileSetCmd.Flags().StringVar(&profileKind, "kind", "", "Business kind (SME, large)")
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	user, db, err := loadProfile(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return output.Output(outputFmt, &user)
}

func runProfileSet(cmd *cobra.Command, args []string) error {
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

	if profileName != "" {
		user.Name = profileName
	}
	if profileCompany != "" {
		user.Company = profileCompany
	}
	if profileEmail != "" {
		user.Email = profileEmail
	}
	if profileLocation != "" {
		user.Location = profileLocation
	}
	if profileEmployees >= 0 {
		user.EmployeeCount = profileEmployees
	}
	if profileRevenue >= 0 {
		user.AnnualRevenue = profileRevenue
	}
	if profileSector != "" {
		user.Sector = profileSector
	}
	if profileKind != "" {
		user.BusinessKind = profileKind
	}

	if err := user.Validate(); err != nil {
		return err
	}

	if err := db.SaveCompanyProfile(ctx, profileToRecord(user)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Println("Profile updated.")
	return output.Output(outputFmt, &user)
}

// loadProfile opens the database and returns the stored company profile,
// falling back to the built-in demo record when nothing is stored yet.
// The caller owns the returned database handle.
func loadProfile(ctx context.Context, cfg *config.Config) (profile.UserProfile, *database.DB, error) {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return profile.UserProfile{}, nil, fmt.Errorf("failed to open database: %w", err)
	}

	demo := profile.Demo()
	record, err := db.GetCompanyProfileByKvK(ctx, demo.KvK)
	if err != nil {
		db.Close()
		return profile.UserProfile{}, nil, err
	}
	if record == nil {
		return demo, db, nil
	}
	return profileFromRecord(record), db, nil
}

func profileToRecord(u profile.UserProfile) *database.CompanyProfile {
	var email *string
	if u.Email != "" {
		email = &u.Email
	}
	return &database.CompanyProfile{
		OwnerName:     u.Name,
		CompanyName:   u.Company,
		KvKNumber:     u.KvK,
		Email:         email,
		Location:      u.Location,
		EmployeeCount: u.EmployeeCount,
		AnnualRevenue: u.AnnualRevenue,
		Sector:        u.Sector,
		BusinessKind:  u.BusinessKind,
	}
}

func profileFromRecord(r *database.CompanyProfile) profile.UserProfile {
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	return profile.UserProfile{
		Name:          r.OwnerName,
		Company:       r.CompanyName,
		KvK:           r.KvKNumber,
		Email:         email,
		Location:      r.Location,
		EmployeeCount: r.EmployeeCount,
		AnnualRevenue: r.AnnualRevenue,
		Sector:        r.Sector,
		BusinessKind:  r.BusinessKind,
	}
}
