package models

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Candidate availability values
const (
	AvailabilityImmediate    = "immediate"
	AvailabilityTwoWeeks     = "2-weeks"
	AvailabilityOneMonth     = "1-month"
	AvailabilityThreeMonths  = "3-months"
	AvailabilityNotAvailable = "not-available"
)

// Candidate status values
const (
	CandidateStatusActive    = "active"
	CandidateStatusInactive  = "inactive"
	CandidateStatusPlaced    = "placed"
	CandidateStatusWithdrawn = "withdrawn"
)

type Candidate struct {
	ID              int        `json:"id"`
	CandidateCode   string     `json:"candidate_code"` // 8-character unique code
	UserID          int        `json:"user_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Title           string     `json:"title"`
	Location        string     `json:"location"`
	ExperienceYears *int       `json:"experience_years"`
	Skills          []string   `json:"skills"`
	Availability    string     `json:"availability"`
	Status          string     `json:"status"`
	CurrentSalary   *float64   `json:"current_salary"`
	ExpectedSalary  *float64   `json:"expected_salary"`
	ResumeURL       string     `json:"resume_url,omitempty"`
	LinkedinURL     string     `json:"linkedin_url,omitempty"`
	PortfolioURL    string     `json:"portfolio_url,omitempty"`
	Notes           string     `json:"notes"`
	Tags            []string   `json:"tags"`
	LastContacted   *time.Time `json:"last_contacted"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ValidCandidateStatus reports whether s is one of the accepted status values.
func ValidCandidateStatus(s string) bool {
	switch s {
	case CandidateStatusActive, CandidateStatusInactive, CandidateStatusPlaced, CandidateStatusWithdrawn:
		return true
	}
	return false
}

// ValidAvailability reports whether s is one of the accepted availability values.
func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityImmediate, AvailabilityTwoWeeks, AvailabilityOneMonth,
		AvailabilityThreeMonths, AvailabilityNotAvailable:
		return true
	}
	return false
}

type CandidateModel struct {
	DB *sql.DB
}

func NewCandidateModel(db *sql.DB) *CandidateModel {
	return &CandidateModel{DB: db}
}

// generateCandidateCode generates a unique 8-character alphanumeric code
func generateCandidateCode() string {
	bytes := make([]byte, 4) // 4 bytes = 8 hex characters
	rand.Read(bytes)
	return strings.ToUpper(hex.EncodeToString(bytes))
}

const candidateColumns = `id, candidate_code, user_id, name, email, phone, title, location,
	experience_years, skills, availability, status, current_salary, expected_salary,
	resume_url, linkedin_url, portfolio_url, notes, tags, last_contacted, created_at, updated_at`

func scanCandidate(row interface{ Scan(...interface{}) error }) (*Candidate, error) {
	c := &Candidate{}
	var experienceYears sql.NullInt64
	var currentSalary, expectedSalary sql.NullFloat64
	var lastContacted sql.NullTime
	err := row.Scan(
		&c.ID, &c.CandidateCode, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Title, &c.Location,
		&experienceYears, pq.Array(&c.Skills), &c.Availability, &c.Status,
		&currentSalary, &expectedSalary,
		&c.ResumeURL, &c.LinkedinURL, &c.PortfolioURL, &c.Notes, pq.Array(&c.Tags),
		&lastContacted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if experienceYears.Valid {
		years := int(experienceYears.Int64)
		c.ExperienceYears = &years
	}
	if currentSalary.Valid {
		c.CurrentSalary = &currentSalary.Float64
	}
	if expectedSalary.Valid {
		c.ExpectedSalary = &expectedSalary.Float64
	}
	if lastContacted.Valid {
		c.LastContacted = &lastContacted.Time
	}
	return c, nil
}

func (m *CandidateModel) Create(userID int, c *Candidate) (*Candidate, error) {
	// Generate a unique candidate code
	candidateCode := generateCandidateCode()

	// Check if code already exists and regenerate if needed
	for {
		var exists bool
		err := m.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM candidates WHERE candidate_code = $1)", candidateCode).Scan(&exists)
		if err != nil || !exists {
			break
		}
		candidateCode = generateCandidateCode()
	}

	query := `
		INSERT INTO candidates (candidate_code, user_id, name, email, phone, title, location,
			experience_years, skills, availability, status, current_salary, expected_salary,
			resume_url, linkedin_url, portfolio_url, notes, tags, last_contacted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $20)
		RETURNING ` + candidateColumns
	row := m.DB.QueryRow(query, candidateCode, userID, c.Name, c.Email, c.Phone, c.Title, c.Location,
		nullInt(c.ExperienceYears), pq.Array(c.Skills), c.Availability, c.Status,
		nullFloat(c.CurrentSalary), nullFloat(c.ExpectedSalary),
		c.ResumeURL, c.LinkedinURL, c.PortfolioURL, c.Notes, pq.Array(c.Tags),
		nullTime(c.LastContacted), time.Now())
	return scanCandidate(row)
}

func (m *CandidateModel) GetByUserID(userID int, limit, offset int) ([]Candidate, error) {
	candidates := []Candidate{}
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := m.DB.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

// GetAllByUserID returns every candidate for the tenant, for in-memory search
// and reporting. The query runs under ctx so a superseded search request
// cancels its fetch instead of racing a newer one.
func (m *CandidateModel) GetAllByUserID(ctx context.Context, userID int) ([]Candidate, error) {
	candidates := []Candidate{}
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := m.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (m *CandidateModel) GetByID(userID, id int) (*Candidate, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates WHERE id = $1 AND user_id = $2
	`
	return scanCandidate(m.DB.QueryRow(query, id, userID))
}

func (m *CandidateModel) Update(userID, id int, c *Candidate) (*Candidate, error) {
	query := `
		UPDATE candidates
		SET name = $1, email = $2, phone = $3, title = $4, location = $5,
			experience_years = $6, skills = $7, availability = $8, status = $9,
			current_salary = $10, expected_salary = $11,
			resume_url = $12, linkedin_url = $13, portfolio_url = $14,
			notes = $15, tags = $16, last_contacted = $17, updated_at = $18
		WHERE id = $19 AND user_id = $20
		RETURNING ` + candidateColumns
	row := m.DB.QueryRow(query, c.Name, c.Email, c.Phone, c.Title, c.Location,
		nullInt(c.ExperienceYears), pq.Array(c.Skills), c.Availability, c.Status,
		nullFloat(c.CurrentSalary), nullFloat(c.ExpectedSalary),
		c.ResumeURL, c.LinkedinURL, c.PortfolioURL, c.Notes, pq.Array(c.Tags),
		nullTime(c.LastContacted), time.Now(), id, userID)
	return scanCandidate(row)
}

func (m *CandidateModel) UpdateStatus(userID, id int, status string) error {
	query := `UPDATE candidates SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	_, err := m.DB.Exec(query, status, time.Now(), id, userID)
	return err
}

func (m *CandidateModel) UpdateResumeURL(userID, id int, resumeURL string) error {
	query := `UPDATE candidates SET resume_url = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	_, err := m.DB.Exec(query, resumeURL, time.Now(), id, userID)
	return err
}

// TouchLastContacted marks the candidate as contacted now.
func (m *CandidateModel) TouchLastContacted(userID, id int) error {
	query := `UPDATE candidates SET last_contacted = $1, updated_at = $1 WHERE id = $2 AND user_id = $3`
	_, err := m.DB.Exec(query, time.Now(), id, userID)
	return err
}

func (m *CandidateModel) Delete(userID, id int) error {
	query := `DELETE FROM candidates WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
