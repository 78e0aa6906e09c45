package models

import (
	"database/sql"
	"time"
)

// Interview type values
const (
	InterviewTypeVideo    = "video"
	InterviewTypePhone    = "phone"
	InterviewTypeInPerson = "in-person"
)

// Interview status values
const (
	InterviewStatusScheduled   = "scheduled"
	InterviewStatusCompleted   = "completed"
	InterviewStatusCancelled   = "cancelled"
	InterviewStatusRescheduled = "rescheduled"
)

type Interview struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	CandidateID      int       `json:"candidate_id"`
	ApplicationID    *int      `json:"application_id"`
	Title            string    `json:"title"`
	InterviewType    string    `json:"interview_type"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	DurationMinutes  int       `json:"duration_minutes"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	InterviewerName  string    `json:"interviewer_name"`
	InterviewerEmail string    `json:"interviewer_email"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ValidInterviewType reports whether s is one of the accepted type values.
func ValidInterviewType(s string) bool {
	return s == InterviewTypeVideo || s == InterviewTypePhone || s == InterviewTypeInPerson
}

// ValidInterviewStatus reports whether s is one of the accepted status values.
func ValidInterviewStatus(s string) bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusRescheduled:
		return true
	}
	return false
}

type InterviewModel struct {
	DB *sql.DB
}

func NewInterviewModel(db *sql.DB) *InterviewModel {
	return &InterviewModel{DB: db}
}

const interviewColumns = `id, user_id, candidate_id, application_id, title, interview_type,
	scheduled_at, duration_minutes, location, status, interviewer_name, interviewer_email,
	notes, created_at, updated_at`

func scanInterview(row interface{ Scan(...interface{}) error }) (*Interview, error) {
	iv := &Interview{}
	var applicationID sql.NullInt64
	err := row.Scan(
		&iv.ID, &iv.UserID, &iv.CandidateID, &applicationID, &iv.Title, &iv.InterviewType,
		&iv.ScheduledAt, &iv.DurationMinutes, &iv.Location, &iv.Status,
		&iv.InterviewerName, &iv.InterviewerEmail, &iv.Notes, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if applicationID.Valid {
		id := int(applicationID.Int64)
		iv.ApplicationID = &id
	}
	return iv, nil
}

func (m *InterviewModel) Create(userID int, iv *Interview) (*Interview, error) {
	query := `
		INSERT INTO interviews (user_id, candidate_id, application_id, title, interview_type,
			scheduled_at, duration_minutes, location, status, interviewer_name, interviewer_email,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING ` + interviewColumns
	row := m.DB.QueryRow(query, userID, iv.CandidateID, nullInt(iv.ApplicationID), iv.Title,
		iv.InterviewType, iv.ScheduledAt, iv.DurationMinutes, iv.Location, iv.Status,
		iv.InterviewerName, iv.InterviewerEmail, iv.Notes, time.Now())
	return scanInterview(row)
}

func (m *InterviewModel) GetByUserID(userID int) ([]Interview, error) {
	interviews := []Interview{}
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE user_id = $1
		ORDER BY scheduled_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

func (m *InterviewModel) GetByID(userID, id int) (*Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews WHERE id = $1 AND user_id = $2
	`
	return scanInterview(m.DB.QueryRow(query, id, userID))
}

func (m *InterviewModel) Update(userID, id int, iv *Interview) (*Interview, error) {
	query := `
		UPDATE interviews
		SET title = $1, interview_type = $2, scheduled_at = $3, duration_minutes = $4,
			location = $5, status = $6, interviewer_name = $7, interviewer_email = $8,
			notes = $9, updated_at = $10
		WHERE id = $11 AND user_id = $12
		RETURNING ` + interviewColumns
	row := m.DB.QueryRow(query, iv.Title, iv.InterviewType, iv.ScheduledAt, iv.DurationMinutes,
		iv.Location, iv.Status, iv.InterviewerName, iv.InterviewerEmail, iv.Notes,
		time.Now(), id, userID)
	return scanInterview(row)
}

func (m *InterviewModel) UpdateStatus(userID, id int, status string) error {
	query := `UPDATE interviews SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	_, err := m.DB.Exec(query, status, time.Now(), id, userID)
	return err
}

func (m *InterviewModel) Delete(userID, id int) error {
	query := `DELETE FROM interviews WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}
