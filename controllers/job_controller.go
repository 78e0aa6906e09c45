package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/utils"
)

// JobController handles job posting CRUD
type JobController struct {
	jobs   *models.JobModel
	logger *utils.Logger
}

func NewJobController(jobs *models.JobModel) *JobController {
	return &JobController{
		jobs:   jobs,
		logger: utils.GlobalLogger.WithComponent("jobs"),
	}
}

type JobRequest struct {
	Title      string   `json:"title" binding:"required"`
	Department string   `json:"department"`
	Location   string   `json:"location"`
	Status     string   `json:"status"`
	Skills     []string `json:"skills"`
}

func (r *JobRequest) toJob() (*models.Job, string) {
	if r.Status == "" {
		r.Status = models.JobStatusOpen
	}
	if !models.ValidJobStatus(r.Status) {
		return nil, "Invalid status value"
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	return &models.Job{
		Title:      r.Title,
		Department: r.Department,
		Location:   r.Location,
		Status:     r.Status,
		Skills:     r.Skills,
	}, ""
}

// List returns the tenant's job postings
func (jc *JobController) List(c *gin.Context) {
	jobs, err := jc.jobs.GetByUserID(middleware.UserID(c))
	if err != nil {
		jc.logger.Error("failed to list jobs", err)
		utils.InternalServerError(c, "Failed to load jobs", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", jobs)
}

// Get returns a single job posting
func (jc *JobController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid job id", err)
		return
	}

	job, err := jc.jobs.GetByID(middleware.UserID(c), id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Job not found")
			return
		}
		utils.InternalServerError(c, "Failed to load job", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", job)
}

// Create adds a job posting
func (jc *JobController) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	job, msg := req.toJob()
	if msg != "" {
		utils.BadRequestError(c, msg, nil)
		return
	}

	created, err := jc.jobs.Create(middleware.UserID(c), job)
	if err != nil {
		jc.logger.Error("failed to create job", err)
		utils.InternalServerError(c, "Failed to create job", err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Job created", created)
}

// Update replaces a job posting
func (jc *JobController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid job id", err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	job, msg := req.toJob()
	if msg != "" {
		utils.BadRequestError(c, msg, nil)
		return
	}

	updated, err := jc.jobs.Update(middleware.UserID(c), id, job)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Job not found")
			return
		}
		utils.InternalServerError(c, "Failed to update job", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Job updated", updated)
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus opens or closes a job posting
func (jc *JobController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid job id", err)
		return
	}

	var req JobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if !models.ValidJobStatus(req.Status) {
		utils.BadRequestError(c, "Invalid status value", nil)
		return
	}

	if err := jc.jobs.UpdateStatus(middleware.UserID(c), id, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update status", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

// Delete removes a job posting
func (jc *JobController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid job id", err)
		return
	}

	if err := jc.jobs.Delete(middleware.UserID(c), id); err != nil {
		utils.InternalServerError(c, "Failed to delete job", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Job deleted", nil)
}
