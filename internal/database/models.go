package database

import (
	"database/sql"
	"time"
)

// ApplicationStatus represents the state of a submitted application
type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "submitted"
	StatusInReview  ApplicationStatus = "in_review"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
)

// CompanyProfile is the persisted business record behind a user profile
type CompanyProfile struct {
	ID            string    `json:"id"`
	OwnerName     string    `json:"owner_name"`
	CompanyName   string    `json:"company_name"`
	KvKNumber     string    `json:"kvk_number"`
	Email         *string   `json:"email,omitempty"`
	Location      string    `json:"location"`
	EmployeeCount int       `json:"employee_count"`
	AnnualRevenue int64     `json:"annual_revenue"`
	Sector        string    `json:"sector"`
	BusinessKind  string    `json:"business_kind"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Application records a subsidy application submitted from a profile
type Application struct {
	ID          string            `json:"id"`
	ProfileID   string            `json:"profile_id"`
	ProgramName string            `json:"program_name"`
	Score       int               `json:"score"`
	Status      ApplicationStatus `json:"status"`
	Note        *string           `json:"note,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
