package database

import "database/sql"

// EnsureSchema creates the tables the application needs if they do not exist.
// Statements are ordered so foreign keys resolve.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			password VARCHAR(255) NOT NULL,
			plan VARCHAR(20) NOT NULL DEFAULT 'free',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id SERIAL PRIMARY KEY,
			candidate_code VARCHAR(8) UNIQUE NOT NULL,
			user_id INTEGER NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			title VARCHAR(255) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			experience_years INTEGER,
			skills TEXT[] NOT NULL DEFAULT '{}',
			availability VARCHAR(20) NOT NULL DEFAULT 'immediate',
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			current_salary NUMERIC,
			expected_salary NUMERIC,
			resume_url TEXT NOT NULL DEFAULT '',
			linkedin_url TEXT NOT NULL DEFAULT '',
			portfolio_url TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			last_contacted TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			title VARCHAR(255) NOT NULL,
			department VARCHAR(255) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'open',
			skills TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			candidate_id INTEGER NOT NULL REFERENCES candidates(id),
			job_id INTEGER NOT NULL REFERENCES jobs(id),
			status VARCHAR(20) NOT NULL DEFAULT 'applied',
			match_score INTEGER,
			notes TEXT NOT NULL DEFAULT '',
			applied_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS interviews (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			candidate_id INTEGER NOT NULL REFERENCES candidates(id),
			application_id INTEGER REFERENCES applications(id),
			title VARCHAR(255) NOT NULL,
			interview_type VARCHAR(20) NOT NULL DEFAULT 'video',
			scheduled_at TIMESTAMP NOT NULL,
			duration_minutes INTEGER NOT NULL DEFAULT 60,
			location VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			interviewer_name VARCHAR(255) NOT NULL DEFAULT '',
			interviewer_email VARCHAR(255) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS team_members (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			email VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'member',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			permissions TEXT[] NOT NULL DEFAULT '{}',
			invite_token VARCHAR(64) UNIQUE NOT NULL,
			invited_by VARCHAR(255) NOT NULL DEFAULT '',
			invited_at TIMESTAMP NOT NULL DEFAULT NOW(),
			joined_at TIMESTAMP,
			UNIQUE (user_id, email)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_user_id ON candidates(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_user_id ON applications(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interviews_user_id ON interviews(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
