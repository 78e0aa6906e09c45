package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserCreate_StartsOnFreePlan(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("recruiter@example.com", "Recruiter", "hashed", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "plan", "created_at", "updated_at"}).
			AddRow(1, "recruiter@example.com", "Recruiter", "free", now, now))

	user, err := NewUserModel(db).Create("recruiter@example.com", "Recruiter", "hashed")

	assert.NoError(t, err)
	assert.Equal(t, "free", user.Plan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdatePlan(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET plan").
		WithArgs("pro", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewUserModel(db).UpdatePlan(1, "pro"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmail_PasswordIncludedForVerification(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, name, password, plan").
		WithArgs("recruiter@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password", "plan", "created_at", "updated_at"}).
			AddRow(1, "recruiter@example.com", "Recruiter", "$2a$10$hash", "starter", now, now))

	user, err := NewUserModel(db).GetByEmail("recruiter@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", user.Password)
	assert.Equal(t, "starter", user.Plan)
}
