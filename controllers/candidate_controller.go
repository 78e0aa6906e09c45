package controllers

import (
	"bytes"
	"database/sql"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

// maxResumeSize caps uploaded resume files at 10 MB.
const maxResumeSize = 10 << 20

// CandidateController handles candidate CRUD and resume uploads
type CandidateController struct {
	candidates *models.CandidateModel
	s3Service  *services.S3Service
	logger     *utils.Logger
}

func NewCandidateController(candidates *models.CandidateModel, s3Service *services.S3Service) *CandidateController {
	return &CandidateController{
		candidates: candidates,
		s3Service:  s3Service,
		logger:     utils.GlobalLogger.WithComponent("candidates"),
	}
}

// CandidateRequest is the payload for creating or updating a candidate.
// Optional numeric fields stay nil when absent rather than defaulting to zero.
type CandidateRequest struct {
	Name            string     `json:"name" binding:"required"`
	Email           string     `json:"email" binding:"required,email"`
	Phone           string     `json:"phone"`
	Title           string     `json:"title"`
	Location        string     `json:"location"`
	ExperienceYears *int       `json:"experience_years"`
	Skills          []string   `json:"skills"`
	Availability    string     `json:"availability"`
	Status          string     `json:"status"`
	CurrentSalary   *float64   `json:"current_salary"`
	ExpectedSalary  *float64   `json:"expected_salary"`
	ResumeURL       string     `json:"resume_url"`
	LinkedinURL     string     `json:"linkedin_url"`
	PortfolioURL    string     `json:"portfolio_url"`
	Notes           string     `json:"notes"`
	Tags            []string   `json:"tags"`
	LastContacted   *time.Time `json:"last_contacted"`
}

func (r *CandidateRequest) toCandidate() (*models.Candidate, string) {
	if r.Availability == "" {
		r.Availability = models.AvailabilityImmediate
	}
	if r.Status == "" {
		r.Status = models.CandidateStatusActive
	}
	if !models.ValidAvailability(r.Availability) {
		return nil, "Invalid availability value"
	}
	if !models.ValidCandidateStatus(r.Status) {
		return nil, "Invalid status value"
	}
	if r.ExperienceYears != nil && *r.ExperienceYears < 0 {
		return nil, "Experience years must not be negative"
	}
	if r.CurrentSalary != nil && *r.CurrentSalary < 0 {
		return nil, "Current salary must not be negative"
	}
	if r.ExpectedSalary != nil && *r.ExpectedSalary < 0 {
		return nil, "Expected salary must not be negative"
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}

	return &models.Candidate{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Title:           r.Title,
		Location:        r.Location,
		ExperienceYears: r.ExperienceYears,
		Skills:          r.Skills,
		Availability:    r.Availability,
		Status:          r.Status,
		CurrentSalary:   r.CurrentSalary,
		ExpectedSalary:  r.ExpectedSalary,
		ResumeURL:       r.ResumeURL,
		LinkedinURL:     r.LinkedinURL,
		PortfolioURL:    r.PortfolioURL,
		Notes:           r.Notes,
		Tags:            r.Tags,
		LastContacted:   r.LastContacted,
	}, ""
}

// List returns the tenant's candidates with limit/offset paging
func (cc *CandidateController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	candidates, err := cc.candidates.GetByUserID(middleware.UserID(c), limit, offset)
	if err != nil {
		cc.logger.Error("failed to list candidates", err)
		utils.InternalServerError(c, "Failed to load candidates", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", candidates)
}

// Get returns a single candidate
func (cc *CandidateController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	candidate, err := cc.candidates.GetByID(middleware.UserID(c), id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Candidate not found")
			return
		}
		utils.InternalServerError(c, "Failed to load candidate", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", candidate)
}

// Create adds a candidate to the tenant's pool
func (cc *CandidateController) Create(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	candidate, msg := req.toCandidate()
	if msg != "" {
		utils.BadRequestError(c, msg, nil)
		return
	}

	created, err := cc.candidates.Create(middleware.UserID(c), candidate)
	if err != nil {
		cc.logger.Error("failed to create candidate", err)
		utils.InternalServerError(c, "Failed to create candidate", err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Candidate created", created)
}

// Update replaces a candidate's profile
func (cc *CandidateController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	candidate, msg := req.toCandidate()
	if msg != "" {
		utils.BadRequestError(c, msg, nil)
		return
	}

	updated, err := cc.candidates.Update(middleware.UserID(c), id, candidate)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Candidate not found")
			return
		}
		utils.InternalServerError(c, "Failed to update candidate", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Candidate updated", updated)
}

type CandidateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus patches only the candidate's status
func (cc *CandidateController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	var req CandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}
	if !models.ValidCandidateStatus(req.Status) {
		utils.BadRequestError(c, "Invalid status value", nil)
		return
	}

	if err := cc.candidates.UpdateStatus(middleware.UserID(c), id, req.Status); err != nil {
		utils.InternalServerError(c, "Failed to update status", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

// MarkContacted records that the candidate was reached out to now
func (cc *CandidateController) MarkContacted(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	if err := cc.candidates.TouchLastContacted(middleware.UserID(c), id); err != nil {
		utils.InternalServerError(c, "Failed to update candidate", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Candidate marked as contacted", nil)
}

// UploadResume stores a resume file and records its URL on the candidate
func (cc *CandidateController) UploadResume(c *gin.Context) {
	if cc.s3Service == nil {
		utils.InternalServerError(c, "File storage is not configured", nil)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	userID := middleware.UserID(c)
	if _, err := cc.candidates.GetByID(userID, id); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Candidate not found")
			return
		}
		utils.InternalServerError(c, "Failed to load candidate", err)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "Missing resume file", err)
		return
	}
	if fileHeader.Size > maxResumeSize {
		utils.BadRequestError(c, "Resume file too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerError(c, "Failed to read resume file", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Failed to read resume file", err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := cc.s3Service.UploadResume(id, filepath.Base(fileHeader.Filename), bytes.NewReader(content), contentType)
	if err != nil {
		cc.logger.Error("resume upload failed", err, map[string]int{"candidate_id": id})
		utils.InternalServerError(c, "Failed to store resume", err)
		return
	}

	if err := cc.candidates.UpdateResumeURL(userID, id, url); err != nil {
		utils.InternalServerError(c, "Failed to record resume URL", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume uploaded", gin.H{"resume_url": url})
}

// DownloadResume returns a short-lived link to the candidate's stored resume.
// Resumes in the bucket get a presigned URL; externally hosted resume links
// are returned as stored.
func (cc *CandidateController) DownloadResume(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	candidate, err := cc.candidates.GetByID(middleware.UserID(c), id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Candidate not found")
			return
		}
		utils.InternalServerError(c, "Failed to load candidate", err)
		return
	}
	if candidate.ResumeURL == "" {
		utils.NotFoundError(c, "No resume on file for this candidate")
		return
	}

	downloadURL := candidate.ResumeURL
	if cc.s3Service != nil {
		if key, ok := cc.s3Service.KeyFromURL(candidate.ResumeURL); ok {
			downloadURL, err = cc.s3Service.GeneratePresignedURL(key)
			if err != nil {
				cc.logger.Error("presigned URL generation failed", err, map[string]int{"candidate_id": id})
				utils.InternalServerError(c, "Failed to generate download link", err)
				return
			}
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"download_url": downloadURL})
}

// Delete removes a candidate and cleans up their stored resume file
func (cc *CandidateController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestError(c, "Invalid candidate id", err)
		return
	}

	userID := middleware.UserID(c)
	candidate, err := cc.candidates.GetByID(userID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(c, "Candidate not found")
			return
		}
		utils.InternalServerError(c, "Failed to load candidate", err)
		return
	}

	if err := cc.candidates.Delete(userID, id); err != nil {
		utils.InternalServerError(c, "Failed to delete candidate", err)
		return
	}

	// Best effort; an orphaned file never blocks the delete
	if cc.s3Service != nil && candidate.ResumeURL != "" {
		if key, ok := cc.s3Service.KeyFromURL(candidate.ResumeURL); ok {
			if err := cc.s3Service.DeleteFile(key); err != nil {
				cc.logger.Warn("resume cleanup failed", map[string]int{"candidate_id": id})
			}
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Candidate deleted", nil)
}
