package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Job status values
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

type Job struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	Skills     []string  `json:"skills"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidJobStatus reports whether s is one of the accepted status values.
func ValidJobStatus(s string) bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

type JobModel struct {
	DB *sql.DB
}

func NewJobModel(db *sql.DB) *JobModel {
	return &JobModel{DB: db}
}

const jobColumns = `id, user_id, title, department, location, status, skills, created_at, updated_at`

func scanJob(row interface{ Scan(...interface{}) error }) (*Job, error) {
	j := &Job{}
	err := row.Scan(&j.ID, &j.UserID, &j.Title, &j.Department, &j.Location, &j.Status,
		pq.Array(&j.Skills), &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (m *JobModel) Create(userID int, j *Job) (*Job, error) {
	query := `
		INSERT INTO jobs (user_id, title, department, location, status, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + jobColumns
	row := m.DB.QueryRow(query, userID, j.Title, j.Department, j.Location, j.Status,
		pq.Array(j.Skills), time.Now())
	return scanJob(row)
}

func (m *JobModel) GetByUserID(userID int) ([]Job, error) {
	jobs := []Job{}
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (m *JobModel) GetByID(userID, id int) (*Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs WHERE id = $1 AND user_id = $2
	`
	return scanJob(m.DB.QueryRow(query, id, userID))
}

func (m *JobModel) Update(userID, id int, j *Job) (*Job, error) {
	query := `
		UPDATE jobs
		SET title = $1, department = $2, location = $3, status = $4, skills = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
		RETURNING ` + jobColumns
	row := m.DB.QueryRow(query, j.Title, j.Department, j.Location, j.Status,
		pq.Array(j.Skills), time.Now(), id, userID)
	return scanJob(row)
}

func (m *JobModel) UpdateStatus(userID, id int, status string) error {
	query := `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	_, err := m.DB.Exec(query, status, time.Now(), id, userID)
	return err
}

func (m *JobModel) Delete(userID, id int) error {
	query := `DELETE FROM jobs WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}
