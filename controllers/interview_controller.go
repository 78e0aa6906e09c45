package controllers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

// InterviewController handles interview scheduling
type InterviewController struct {
	interviews *models.InterviewModel
	candidates *models.CandidateModel
	email      *services.EmailNotificationService
	logger     *utils.Logger
}

func NewInterviewController(interviews *models.InterviewModel, candidates *models.CandidateModel, email *services.EmailNotificationService) *InterviewController {
	return &InterviewController{
		interviews: interviews,
		candidates: candidates,
		email:      email,
		logger:     utils.GlobalLogger.WithComponent("interviews"),
	}
}

type InterviewRequest struct {
	CandidateID      int       `json:"candidate_id" binding:"required"`
	ApplicationID    *int      `json:"application_id"`
	Title            string    `json:"title" binding:"required"`
	InterviewType    string    `json:"interview_type"`
	ScheduledAt      time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes  int       `json:"duration_minutes"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	InterviewerName  string    `json:"interviewer_name"`
	InterviewerEmail string    `json:"interviewer_email"`
	Notes            string    `json:"notes"`
}

func (r *InterviewRequest) toInterview() (*models.Interview, string) {
	if r.InterviewType == "" {
		r.InterviewType = models.InterviewTypeVideo
	}
	if r.Status == "" {
		r.Status = models.InterviewStatusScheduled
	}
	if r.DurationMinutes <= 0 {
		r.DurationMinutes = 60
	}
	if !models.ValidInterviewType(r.InterviewType) {
		return nil, "Invalid interview type"
	}
	if !models.ValidInterviewStatus(r.Status) {
		return nil, "Invalid status value"
	}

	return &models.Interview{
		CandidateID:      r.CandidateID,
		ApplicationID:    r.ApplicationID,
		Title:            r.Title,
		InterviewType:    r.InterviewType,
		ScheduledAt:      r.ScheduledAt,
		DurationMinutes:  r.DurationMinutes,
		Location:         r.Location,
		Status:           r.Status,
		InterviewerName:  r.InterviewerName,
		InterviewerEmail: r.InterviewerEmail,
		Notes:            r.Notes,
	}, ""
}

// List returns the tenant's interviews
func (ic *InterviewController) List(c *gin.Context) {
	interviews, err := ic.interviews.GetByUserID(middleware.UserID(c))
	if err != nil {
		ic.logger.Error("failed to list interviews", err)
		utils.InternalServerError(c, "Failed to load interviews", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", interviews)
}

// Get returns a single interview
func (ic *InterviewController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid interview id", err)
		return
	}

	interview, err := ic.interviews.GetByID(middleware.UserID(c), id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Interview not found")
			return
		}
		utils.InternalServerError(c, "Failed to load interview", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", interview)
}

// Create schedules an interview and notifies the interviewer by email
func (ic *InterviewController) Create(c *gin.Context) {
	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	interview, msg := req.toInterview()
	if msg != "" {
		utils.BadRequestError(c, msg, nil)
		return
	}

	userID := middleware.UserID(c)
	candidate, err := ic.candidates.GetByID(userID, interview.CandidateID)
	if err != nil {
		utils.BadRequestError(c, "Unknown candidate", err)
		return
	}

	created, err := ic.interviews.Create(userID, interview)
	if err != nil {
		ic.logger.Error("failed to create interview", err)
		utils.InternalServerError(c, "Failed to schedule interview", err)
		return
	}

	if created.InterviewerEmail != "" {
		// Notification failures don't fail the request
		if err := ic.email.SendInterviewScheduled(created.InterviewerEmail, created.InterviewerName,
			candidate.Name, created.Title, created.ScheduledAt, created.DurationMinutes, created.Location); err != nil {
			ic.logger.Warn("interviewer notification failed", map[string]int{"interview_id": created.ID})
		}
	}

	utils.SuccessResponse(c, http.StatusCreated, "Interview scheduled", created)
}

// Update replaces an interview
func (ic *InterviewController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid interview id", err)
		return
	}

	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	interview, msg := req.toInterview()
	if msg != "" {
		utils.BadRequestError(c, msg, nil)
		return
	}

	updated, err := ic.interviews.Update(middleware.UserID(c), id, interview)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Interview not found")
			return
		}
		utils.InternalServerError(c, "Failed to update interview", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Interview updated", updated)
}

type InterviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus marks an interview completed, cancelled or rescheduled
func (ic *InterviewController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid interview id", err)
		return
	}

	var req InterviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if !models.ValidInterviewStatus(req.Status) {
		utils.BadRequestError(c, "Invalid status value", nil)
		return
	}

	if err := ic.interviews.UpdateStatus(middleware.UserID(c), id, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update status", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

// Delete removes an interview
func (ic *InterviewController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid interview id", err)
		return
	}

	if err := ic.interviews.Delete(middleware.UserID(c), id); err != nil {
		utils.InternalServerError(c, "Failed to delete interview", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Interview deleted", nil)
}
