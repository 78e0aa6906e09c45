package models

import (
	"database/sql"
	"time"
)

// Application status values. Transitions usually move forward through this
// list but the store accepts any transition; hired and rejected are terminal
// by convention only.
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusScreening = "screening"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffer     = "offer"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

type Application struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	CandidateID int       `json:"candidate_id"`
	JobID       int       `json:"job_id"`
	Status      string    `json:"status"`
	MatchScore  *int      `json:"match_score"`
	Notes       string    `json:"notes"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined display fields, populated by list queries
	CandidateName string `json:"candidate_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
}

// ValidApplicationStatus reports whether s is one of the accepted status values.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusScreening, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type ApplicationModel struct {
	DB *sql.DB
}

func NewApplicationModel(db *sql.DB) *ApplicationModel {
	return &ApplicationModel{DB: db}
}

func scanApplication(row interface{ Scan(...interface{}) error }, joined bool) (*Application, error) {
	a := &Application{}
	var matchScore sql.NullInt64
	dest := []interface{}{
		&a.ID, &a.UserID, &a.CandidateID, &a.JobID, &a.Status, &matchScore,
		&a.Notes, &a.AppliedAt, &a.UpdatedAt,
	}
	if joined {
		dest = append(dest, &a.CandidateName, &a.JobTitle)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if matchScore.Valid {
		score := int(matchScore.Int64)
		a.MatchScore = &score
	}
	return a, nil
}

func (m *ApplicationModel) Create(userID, candidateID, jobID int, notes string, matchScore *int) (*Application, error) {
	query := `
		INSERT INTO applications (user_id, candidate_id, job_id, status, match_score, notes, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, user_id, candidate_id, job_id, status, match_score, notes, applied_at, updated_at
	`
	row := m.DB.QueryRow(query, userID, candidateID, jobID, ApplicationStatusApplied,
		nullInt(matchScore), notes, time.Now())
	return scanApplication(row, false)
}

// GetByUserID lists the tenant's applications joined with candidate and job
// display names, newest first.
func (m *ApplicationModel) GetByUserID(userID int) ([]Application, error) {
	applications := []Application{}
	query := `
		SELECT a.id, a.user_id, a.candidate_id, a.job_id, a.status, a.match_score,
		       a.notes, a.applied_at, a.updated_at, c.name, j.title
		FROM applications a
		JOIN candidates c ON c.id = a.candidate_id
		JOIN jobs j ON j.id = a.job_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanApplication(rows, true)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *a)
	}
	return applications, rows.Err()
}

func (m *ApplicationModel) GetByID(userID, id int) (*Application, error) {
	query := `
		SELECT id, user_id, candidate_id, job_id, status, match_score, notes, applied_at, updated_at
		FROM applications WHERE id = $1 AND user_id = $2
	`
	return scanApplication(m.DB.QueryRow(query, id, userID), false)
}

func (m *ApplicationModel) GetByJobID(userID, jobID int) ([]Application, error) {
	applications := []Application{}
	query := `
		SELECT id, user_id, candidate_id, job_id, status, match_score, notes, applied_at, updated_at
		FROM applications
		WHERE job_id = $1 AND user_id = $2
		ORDER BY applied_at DESC
	`
	rows, err := m.DB.Query(query, jobID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanApplication(rows, false)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *a)
	}
	return applications, rows.Err()
}

func (m *ApplicationModel) UpdateStatus(userID, id int, status string) error {
	query := `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	_, err := m.DB.Exec(query, status, time.Now(), id, userID)
	return err
}

func (m *ApplicationModel) UpdateNotes(userID, id int, notes string) error {
	query := `UPDATE applications SET notes = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	_, err := m.DB.Exec(query, notes, time.Now(), id, userID)
	return err
}

func (m *ApplicationModel) Delete(userID, id int) error {
	query := `DELETE FROM applications WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}
