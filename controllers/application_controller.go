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

// ApplicationController handles the candidate-to-job application pipeline
type ApplicationController struct {
	applications *models.ApplicationModel
	candidates   *models.CandidateModel
	jobs         *models.JobModel
	match        *services.MatchService
	logger       *utils.Logger
}

func NewApplicationController(applications *models.ApplicationModel, candidates *models.CandidateModel, jobs *models.JobModel) *ApplicationController {
	return &ApplicationController{
		applications: applications,
		candidates:   candidates,
		jobs:         jobs,
		match:        services.NewMatchService(),
		logger:       utils.GlobalLogger.WithComponent("applications"),
	}
}

type ApplicationRequest struct {
	CandidateID int    `json:"candidate_id" binding:"required"`
	JobID       int    `json:"job_id" binding:"required"`
	Notes       string `json:"notes"`
}

// List returns the tenant's applications joined with candidate and job names
func (ac *ApplicationController) List(c *gin.Context) {
	applications, err := ac.applications.GetByUserID(middleware.UserID(c))
	if err != nil {
		ac.logger.Error("failed to list applications", err)
		utils.InternalServerError(c, "Failed to load applications", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", applications)
}

// ListByJob returns the applications submitted for one job, newest first
func (ac *ApplicationController) ListByJob(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid job id", err)
		return
	}

	applications, err := ac.applications.GetByJobID(middleware.UserID(c), jobID)
	if err != nil {
		ac.logger.Error("failed to list job applications", err)
		utils.InternalServerError(c, "Failed to load applications", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", applications)
}

// Get returns a single application
func (ac *ApplicationController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid application id", err)
		return
	}

	application, err := ac.applications.GetByID(middleware.UserID(c), id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Application not found")
			return
		}
		utils.InternalServerError(c, "Failed to load application", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", application)
}

// Create submits a candidate for a job. The application stores the match
// score of the candidate against the job's title and skills at submission
// time.
func (ac *ApplicationController) Create(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	userID := middleware.UserID(c)

	candidate, err := ac.candidates.GetByID(userID, req.CandidateID)
	if err != nil {
		utils.BadRequestError(c, "Unknown candidate", err)
		return
	}
	job, err := ac.jobs.GetByID(userID, req.JobID)
	if err != nil {
		utils.BadRequestError(c, "Unknown job", err)
		return
	}

	// Score against the job description so the pipeline view can rank rows
	query := job.Title
	for _, skill := range job.Skills {
		query += " " + skill
	}
	score := ac.match.Score(candidate, query, time.Now())

	created, err := ac.applications.Create(userID, req.CandidateID, req.JobID, req.Notes, &score)
	if err != nil {
		ac.logger.Error("failed to create application", err)
		utils.InternalServerError(c, "Failed to create application", err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Application created", created)
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an application through the pipeline. Any transition is
// accepted; hired and rejected are terminal by convention only.
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid application id", err)
		return
	}

	var req ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if !models.ValidApplicationStatus(req.Status) {
		utils.BadRequestError(c, "Invalid status value", nil)
		return
	}

	if err := ac.applications.UpdateStatus(middleware.UserID(c), id, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update status", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

type ApplicationNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateNotes replaces the application's notes
func (ac *ApplicationController) UpdateNotes(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid application id", err)
		return
	}

	var req ApplicationNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	if err := ac.applications.UpdateNotes(middleware.UserID(c), id, req.Notes); err != nil {
		utils.InternalServerError(c, "Failed to update notes", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notes updated", nil)
}

// Delete removes an application
func (ac *ApplicationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid application id", err)
		return
	}

	if err := ac.applications.Delete(middleware.UserID(c), id); err != nil {
		utils.InternalServerError(c, "Failed to delete application", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Application deleted", nil)
}
