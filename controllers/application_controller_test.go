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

func TestListByJob(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM applications WHERE job_id").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "candidate_id", "job_id", "status", "match_score", "notes", "applied_at", "updated_at",
		}).
			AddRow(10, 1, 5, 2, "screening", 80, "", now, now).
			AddRow(11, 1, 6, 2, "applied", nil, "", now, now))

	controller := NewApplicationController(models.NewApplicationModel(db), models.NewCandidateModel(db), models.NewJobModel(db))
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/jobs/:id/applications", func(c *gin.Context) {
		c.Set("user_id", 1)
	}, controller.ListByJob)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/jobs/2/applications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"job_id":2`)
	assert.Contains(t, w.Body.String(), `"match_score":80`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByJob_InvalidID(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	controller := NewApplicationController(models.NewApplicationModel(db), models.NewCandidateModel(db), models.NewJobModel(db))
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/jobs/:id/applications", controller.ListByJob)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/jobs/abc/applications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
