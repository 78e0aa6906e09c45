package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"talenthub/models"
)

var candidateRowColumns = []string{
	"id", "candidate_code", "user_id", "name", "email", "phone", "title", "location",
	"experience_years", "skills", "availability", "status", "current_salary", "expected_salary",
	"resume_url", "linkedin_url", "portfolio_url", "notes", "tags", "last_contacted",
	"created_at", "updated_at",
}

func candidateRow(resumeURL string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(candidateRowColumns).AddRow(
		5, "A1B2C3D4", 1, "Alice Johnson", "alice@example.com", "",
		"Backend Engineer", "Berlin", nil, []byte("{}"), "immediate", "active",
		nil, nil, resumeURL, "", "", "", []byte("{}"), nil, now, now,
	)
}

func setupCandidateRouter(controller *CandidateController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := func(c *gin.Context) { c.Set("user_id", 1) }
	r.GET("/api/candidates/:id/resume", auth, controller.DownloadResume)
	r.DELETE("/api/candidates/:id", auth, controller.Delete)
	return r
}

func TestDownloadResume_ExternalURLReturnedAsStored(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM candidates WHERE id").
		WithArgs(5, 1).
		WillReturnRows(candidateRow("https://example.com/cv.pdf"))

	controller := NewCandidateController(models.NewCandidateModel(db), nil)
	r := setupCandidateRouter(controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/candidates/5/resume", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://example.com/cv.pdf")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadResume_NoResumeOnFile(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM candidates WHERE id").
		WithArgs(5, 1).
		WillReturnRows(candidateRow(""))

	controller := NewCandidateController(models.NewCandidateModel(db), nil)
	r := setupCandidateRouter(controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/candidates/5/resume", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCandidate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM candidates WHERE id").
		WithArgs(5, 1).
		WillReturnRows(candidateRow(""))
	mock.ExpectExec("DELETE FROM candidates WHERE id").
		WithArgs(5, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	controller := NewCandidateController(models.NewCandidateModel(db), nil)
	r := setupCandidateRouter(controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/candidates/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCandidate_UnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM candidates WHERE id").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns))

	controller := NewCandidateController(models.NewCandidateModel(db), nil)
	r := setupCandidateRouter(controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/candidates/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
