package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"talenthub/models"
	"talenthub/services"
)

func setupSubscriptionRouter(users *models.UserModel, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", func(c *gin.Context) {
		c.Set("user_id", userID)
	}, Subscription(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, Caps(c))
	})
	return r
}

func TestSubscription_ResolvesPlanFromUserRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, name, plan").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "plan", "created_at", "updated_at"}).
			AddRow(7, "recruiter@example.com", "Recruiter", "pro", now, now))

	router := setupSubscriptionRouter(models.NewUserModel(db), 7)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_search_results":500`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscription_UnknownUserDefaultsToFree(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, name, plan").
		WithArgs(99).
		WillReturnError(assert.AnError)

	router := setupSubscriptionRouter(models.NewUserModel(db), 99)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_search_results":25`)
}

func TestRequireFeature_BlocksMissingCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reports", func(c *gin.Context) {
		c.Set(capabilitiesKey, services.CapabilitiesForPlan(services.PlanFree))
	}, RequireFeature(func(caps services.Capabilities) bool { return caps.Reports }, "reporting"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "reporting")
}

func TestRequireFeature_AllowsGrantedCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reports", func(c *gin.Context) {
		c.Set(capabilitiesKey, services.CapabilitiesForPlan(services.PlanStarter))
	}, RequireFeature(func(caps services.Capabilities) bool { return caps.Reports }, "reporting"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
