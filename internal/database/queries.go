package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveCompanyProfile inserts or updates a company profile, keyed by KvK
// number. The KvK number is the business's registry identity and never
// changes.
func (db *DB) SaveCompanyProfile(ctx context.Context, p *CompanyProfile) error {
	existing, err := db.GetCompanyProfileByKvK(ctx, p.KvKNumber)
	if err != nil {
		return err
	}

	now := time.Now()
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = now

		_, err := db.ExecContext(ctx, `
			UPDATE company_profiles SET
				owner_name = ?, company_name = ?, email = ?, location = ?,
				employee_count = ?, annual_revenue = ?, sector = ?, business_kind = ?, updated_at = ?
			WHERE id = ?
		`,
			p.OwnerName, p.CompanyName, NullString(p.Email), p.Location,
			p.EmployeeCount, p.AnnualRevenue, p.Sector, p.BusinessKind, p.UpdatedAt, p.ID,
		)
		return err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err = db.ExecContext(ctx, `
		INSERT INTO company_profiles (
			id, owner_name, company_name, kvk_number, email, location,
			employee_count, annual_revenue, sector, business_kind, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.OwnerName, p.CompanyName, p.KvKNumber, NullString(p.Email), p.Location,
		p.EmployeeCount, p.AnnualRevenue, p.Sector, p.BusinessKind, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetCompanyProfile retrieves a profile by ID
func (db *DB) GetCompanyProfile(ctx context.Context, id string) (*CompanyProfile, error) {
	return db.scanProfile(db.QueryRowContext(ctx, `
		SELECT id, owner_name, company_name, kvk_number, email, location,
		       employee_count, annual_revenue, sector, business_kind, created_at, updated_at
		FROM company_profiles WHERE id = ?
	`, id))
}

// GetCompanyProfileByKvK retrieves a profile by KvK number
func (db *DB) GetCompanyProfileByKvK(ctx context.Context, kvk string) (*CompanyProfile, error) {
	return db.scanProfile(db.QueryRowContext(ctx, `
		SELECT id, owner_name, company_name, kvk_number, email, location,
		       employee_count, annual_revenue, sector, business_kind, created_at, updated_at
		FROM company_profiles WHERE kvk_number = ?
	`, kvk))
}

func (db *DB) scanProfile(row *sql.Row) (*CompanyProfile, error) {
	p := &CompanyProfile{}
	var email sql.NullString

	err := row.Scan(
		&p.ID, &p.OwnerName, &p.CompanyName, &p.KvKNumber, &email, &p.Location,
		&p.EmployeeCount, &p.AnnualRevenue, &p.Sector, &p.BusinessKind, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Email = StringPtr(email)
	return p, nil
}

// CreateApplication inserts a new application record
func (db *DB) CreateApplication(ctx context.Context, a *Application) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = StatusSubmitted
	}
	a.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO applications (id, profile_id, program_name, score, status, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID, a.ProfileID, a.ProgramName, a.Score, a.Status, NullString(a.Note), a.CreatedAt,
	)
	return err
}

// ListApplications retrieves the applications submitted from a profile,
// newest first
func (db *DB) ListApplications(ctx context.Context, profileID string) ([]Application, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, profile_id, program_name, score, status, note, created_at
		FROM applications WHERE profile_id = ?
		ORDER BY created_at DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		var note sql.NullString
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.ProgramName, &a.Score, &a.Status, &note, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Note = StringPtr(note)
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus moves an application to a new status
func (db *DB) UpdateApplicationStatus(ctx context.Context, id string, status ApplicationStatus) error {
	result, err := db.ExecContext(ctx, `
		UPDATE applications SET status = ? WHERE id = ?
	`, status, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}
