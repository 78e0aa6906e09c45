package services

import (
	"math"
	"sort"
	"time"

	"talenthub/models"
)

// GroupCount is one row of a grouped aggregation.
type GroupCount struct {
	Group      string `json:"group"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// JobApplicationCount pairs a job with how many applications it received.
type JobApplicationCount struct {
	JobID        int    `json:"job_id"`
	JobTitle     string `json:"job_title"`
	Applications int    `json:"applications"`
}

// TrendPoint is one month bucket in a trailing trend.
type TrendPoint struct {
	Month        string `json:"month"`
	Applications int    `json:"applications"`
	Hires        int    `json:"hires"`
}

// DashboardReport bundles every aggregate the dashboard and reports pages show.
type DashboardReport struct {
	TotalCandidates          int                   `json:"total_candidates"`
	TotalJobs                int                   `json:"total_jobs"`
	TotalApplications        int                   `json:"total_applications"`
	TotalInterviews          int                   `json:"total_interviews"`
	ApplicationsByStatus     []GroupCount          `json:"applications_by_status"`
	CandidatesByStatus       []GroupCount          `json:"candidates_by_status"`
	CandidatesByExperience   []GroupCount          `json:"candidates_by_experience"`
	CandidatesByAvailability []GroupCount          `json:"candidates_by_availability"`
	JobsByStatus             []GroupCount          `json:"jobs_by_status"`
	JobsByDepartment         []GroupCount          `json:"jobs_by_department"`
	TopSkills                []GroupCount          `json:"top_skills"`
	TopJobs                  []JobApplicationCount `json:"top_jobs"`
	MonthlyTrend             []TrendPoint          `json:"monthly_trend"`
	AverageTimeToHireDays    int                   `json:"average_time_to_hire_days"`
	InterviewCompletionRate  int                   `json:"interview_completion_rate"`
	InterviewNoShowRate      int                   `json:"interview_no_show_rate"`
}

// AnalyticsService computes grouped counts, rates and trends over record
// collections. All methods are single-pass, in-memory and side-effect free.
type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// groupCounts tallies keys preserving first-seen order and attaches rounded
// percentages. Percentages are all zero when the collection is empty.
func groupCounts(keys []string) []GroupCount {
	counts := map[string]int{}
	var order []string
	for _, key := range keys {
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	total := len(keys)
	out := make([]GroupCount, 0, len(order))
	for _, key := range order {
		out = append(out, GroupCount{
			Group:      key,
			Count:      counts[key],
			Percentage: percentage(counts[key], total),
		})
	}
	return out
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// displayLabel capitalizes the first letter of a status value for widgets.
func displayLabel(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func (a *AnalyticsService) ApplicationsByStatus(applications []models.Application) []GroupCount {
	keys := make([]string, 0, len(applications))
	for _, app := range applications {
		keys = append(keys, displayLabel(app.Status))
	}
	return groupCounts(keys)
}

func (a *AnalyticsService) CandidatesByStatus(candidates []models.Candidate) []GroupCount {
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, displayLabel(c.Status))
	}
	return groupCounts(keys)
}

func (a *AnalyticsService) CandidatesByAvailability(candidates []models.Candidate) []GroupCount {
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, c.Availability)
	}
	return groupCounts(keys)
}

// CandidatesByExperience buckets candidates into fixed year brackets.
// Candidates without a recorded experience value are left out entirely, so
// percentages are relative to the bracketed subset.
func (a *AnalyticsService) CandidatesByExperience(candidates []models.Candidate) []GroupCount {
	keys := []string{}
	for _, c := range candidates {
		if c.ExperienceYears == nil {
			continue
		}
		keys = append(keys, experienceBracket(*c.ExperienceYears))
	}
	return groupCounts(keys)
}

func experienceBracket(years int) string {
	switch {
	case years <= 2:
		return "0-2"
	case years <= 5:
		return "3-5"
	case years <= 10:
		return "6-10"
	default:
		return "10+"
	}
}

func (a *AnalyticsService) JobsByStatus(jobs []models.Job) []GroupCount {
	keys := make([]string, 0, len(jobs))
	for _, j := range jobs {
		keys = append(keys, displayLabel(j.Status))
	}
	return groupCounts(keys)
}

func (a *AnalyticsService) JobsByDepartment(jobs []models.Job) []GroupCount {
	keys := make([]string, 0, len(jobs))
	for _, j := range jobs {
		keys = append(keys, j.Department)
	}
	return groupCounts(keys)
}

// TopSkills returns the most frequent candidate skills, at most limit entries.
// Ties keep first-seen order.
func (a *AnalyticsService) TopSkills(candidates []models.Candidate, limit int) []GroupCount {
	counts := map[string]int{}
	var order []string
	total := 0
	for _, c := range candidates {
		for _, skill := range c.Skills {
			if _, seen := counts[skill]; !seen {
				order = append(order, skill)
			}
			counts[skill]++
			total++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]GroupCount, 0, len(order))
	for _, skill := range order {
		out = append(out, GroupCount{
			Group:      skill,
			Count:      counts[skill],
			Percentage: percentage(counts[skill], total),
		})
	}
	return out
}

// TopJobs returns the jobs with the most applications, at most limit entries.
// Ties keep the original job collection order.
func (a *AnalyticsService) TopJobs(jobs []models.Job, applications []models.Application, limit int) []JobApplicationCount {
	perJob := map[int]int{}
	for _, app := range applications {
		perJob[app.JobID]++
	}

	out := make([]JobApplicationCount, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobApplicationCount{
			JobID:        j.ID,
			JobTitle:     j.Title,
			Applications: perJob[j.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Applications > out[j].Applications
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MonthlyTrend buckets applications into the trailing `months` calendar
// months ending at now, zero-filling months with no records.
func (a *AnalyticsService) MonthlyTrend(applications []models.Application, now time.Time, months int) []TrendPoint {
	// Anchor on the first of the month; stepping from a day-of-month past the
	// 28th would normalize (for example into "Feb 31") and skip months.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]TrendPoint, months)
	index := map[string]int{}
	for i := 0; i < months; i++ {
		m := base.AddDate(0, i-months+1, 0)
		points[i] = TrendPoint{Month: m.Format("Jan 2006")}
		index[m.Format("2006-01")] = i
	}

	for _, app := range applications {
		key := app.AppliedAt.Format("2006-01")
		if i, ok := index[key]; ok {
			points[i].Applications++
		}
		if app.Status == models.ApplicationStatusHired {
			key = app.UpdatedAt.Format("2006-01")
			if i, ok := index[key]; ok {
				points[i].Hires++
			}
		}
	}
	return points
}

// AverageTimeToHire returns the mean days between applying and reaching the
// hired status, over hired applications only. Negative spans count as zero
// days; an empty hired set yields zero.
func (a *AnalyticsService) AverageTimeToHire(applications []models.Application) int {
	totalDays := 0
	hired := 0
	for _, app := range applications {
		if app.Status != models.ApplicationStatusHired {
			continue
		}
		days := int(app.UpdatedAt.Sub(app.AppliedAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		totalDays += days
		hired++
	}
	if hired == 0 {
		return 0
	}
	return int(math.Round(float64(totalDays) / float64(hired)))
}

// InterviewRates returns the completion and cancellation percentages over a
// set of interviews, both zero when the set is empty.
func (a *AnalyticsService) InterviewRates(interviews []models.Interview) (completion, noShow int) {
	completed := 0
	cancelled := 0
	for _, iv := range interviews {
		switch iv.Status {
		case models.InterviewStatusCompleted:
			completed++
		case models.InterviewStatusCancelled:
			cancelled++
		}
	}
	return percentage(completed, len(interviews)), percentage(cancelled, len(interviews))
}

// BuildDashboard assembles the full report from the tenant's collections.
func (a *AnalyticsService) BuildDashboard(candidates []models.Candidate, jobs []models.Job,
	applications []models.Application, interviews []models.Interview, now time.Time) DashboardReport {

	completion, noShow := a.InterviewRates(interviews)
	return DashboardReport{
		TotalCandidates:          len(candidates),
		TotalJobs:                len(jobs),
		TotalApplications:        len(applications),
		TotalInterviews:          len(interviews),
		ApplicationsByStatus:     a.ApplicationsByStatus(applications),
		CandidatesByStatus:       a.CandidatesByStatus(candidates),
		CandidatesByExperience:   a.CandidatesByExperience(candidates),
		CandidatesByAvailability: a.CandidatesByAvailability(candidates),
		JobsByStatus:             a.JobsByStatus(jobs),
		JobsByDepartment:         a.JobsByDepartment(jobs),
		TopSkills:                a.TopSkills(candidates, 10),
		TopJobs:                  a.TopJobs(jobs, applications, 5),
		MonthlyTrend:             a.MonthlyTrend(applications, now, 6),
		AverageTimeToHireDays:    a.AverageTimeToHire(applications),
		InterviewCompletionRate:  completion,
		InterviewNoShowRate:      noShow,
	}
}
