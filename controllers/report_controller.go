package controllers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"talenthub/middleware"
	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

// ReportController serves dashboard aggregates and the report export
type ReportController struct {
	candidates   *models.CandidateModel
	jobs         *models.JobModel
	applications *models.ApplicationModel
	interviews   *models.InterviewModel
	analytics    *services.AnalyticsService
	logger       *utils.Logger
}

func NewReportController(candidates *models.CandidateModel, jobs *models.JobModel,
	applications *models.ApplicationModel, interviews *models.InterviewModel) *ReportController {
	return &ReportController{
		candidates:   candidates,
		jobs:         jobs,
		applications: applications,
		interviews:   interviews,
		analytics:    services.NewAnalyticsService(),
		logger:       utils.GlobalLogger.WithComponent("reports"),
	}
}

func (rc *ReportController) buildReport(ctx context.Context, userID int) (*services.DashboardReport, error) {
	candidates, err := rc.candidates.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}
	jobs, err := rc.jobs.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}
	applications, err := rc.applications.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading applications: %w", err)
	}
	interviews, err := rc.interviews.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("loading interviews: %w", err)
	}

	report := rc.analytics.BuildDashboard(candidates, jobs, applications, interviews, time.Now())
	return &report, nil
}

// Dashboard returns every aggregate the dashboard widgets display
func (rc *ReportController) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	report, err := rc.buildReport(ctx, middleware.UserID(c))
	if err != nil {
		rc.logger.Error("dashboard aggregation failed", err)
		utils.InternalServerError(c, "Failed to build dashboard", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", report)
}

// Export writes the dashboard report as a Word document download
func (rc *ReportController) Export(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	report, err := rc.buildReport(ctx, middleware.UserID(c))
	if err != nil {
		rc.logger.Error("report export failed", err)
		utils.InternalServerError(c, "Failed to build report", err)
		return
	}

	sections := []utils.ReportSection{
		{
			Heading: "Overview",
			Lines: []string{
				fmt.Sprintf("Candidates: %d", report.TotalCandidates),
				fmt.Sprintf("Jobs: %d", report.TotalJobs),
				fmt.Sprintf("Applications: %d", report.TotalApplications),
				fmt.Sprintf("Interviews: %d", report.TotalInterviews),
				fmt.Sprintf("Average time to hire: %d days", report.AverageTimeToHireDays),
				fmt.Sprintf("Interview completion rate: %d%%", report.InterviewCompletionRate),
			},
		},
		{Heading: "Applications by status", Lines: groupLines(report.ApplicationsByStatus)},
		{Heading: "Candidates by status", Lines: groupLines(report.CandidatesByStatus)},
		{Heading: "Candidates by experience", Lines: groupLines(report.CandidatesByExperience)},
		{Heading: "Top skills", Lines: groupLines(report.TopSkills)},
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("TalentHub Recruiting Report - %s", time.Now().Format("January 2, 2006"))
	if err := utils.WriteReportDoc(&buf, title, sections); err != nil {
		rc.logger.Error("report document generation failed", err)
		utils.InternalServerError(c, "Failed to generate report document", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="recruiting-report.docx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())
}

func groupLines(groups []services.GroupCount) []string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%s: %d (%d%%)", g.Group, g.Count, g.Percentage))
	}
	return lines
}
