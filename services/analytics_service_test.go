package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talenthub/models"
)

func TestApplicationsByStatus(t *testing.T) {
	applications := make([]models.Application, 0, 10)
	for i := 0; i < 7; i++ {
		applications = append(applications, models.Application{Status: models.ApplicationStatusApplied})
	}
	for i := 0; i < 3; i++ {
		applications = append(applications, models.Application{Status: models.ApplicationStatusHired})
	}

	groups := NewAnalyticsService().ApplicationsByStatus(applications)

	// First-seen order, capitalized labels, rounded percentages
	assert.Equal(t, []GroupCount{
		{Group: "Applied", Count: 7, Percentage: 70},
		{Group: "Hired", Count: 3, Percentage: 30},
	}, groups)
}

func TestGroupPercentages_SumWithinRoundingTolerance(t *testing.T) {
	applications := []models.Application{
		{Status: models.ApplicationStatusApplied},
		{Status: models.ApplicationStatusScreening},
		{Status: models.ApplicationStatusInterview},
	}

	groups := NewAnalyticsService().ApplicationsByStatus(applications)

	sum := 0
	for _, g := range groups {
		sum += g.Percentage
	}
	assert.InDelta(t, 100, sum, float64(len(groups)))
}

func TestGroupPercentages_ZeroWhenEmpty(t *testing.T) {
	groups := NewAnalyticsService().ApplicationsByStatus(nil)
	assert.Empty(t, groups)
	assert.Equal(t, 0, percentage(0, 0))
}

func TestCandidatesByExperience_ExcludesMissingValues(t *testing.T) {
	candidates := []models.Candidate{
		{ExperienceYears: intPtr(1)},
		{ExperienceYears: intPtr(4)},
		{ExperienceYears: intPtr(12)},
		{}, // no recorded experience
	}

	groups := NewAnalyticsService().CandidatesByExperience(candidates)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, []GroupCount{
		{Group: "0-2", Count: 1, Percentage: 33},
		{Group: "3-5", Count: 1, Percentage: 33},
		{Group: "10+", Count: 1, Percentage: 33},
	}, groups)
}

func TestTopSkills_TiesKeepFirstSeenOrder(t *testing.T) {
	candidates := []models.Candidate{
		{Skills: []string{"Go", "React"}},
		{Skills: []string{"React", "Python"}},
		{Skills: []string{"Go"}},
	}

	skills := NewAnalyticsService().TopSkills(candidates, 10)

	assert.Equal(t, "Go", skills[0].Group)
	assert.Equal(t, 2, skills[0].Count)
	assert.Equal(t, "React", skills[1].Group) // tied with Go, seen after
	assert.Equal(t, "Python", skills[2].Group)
}

func TestTopSkills_Limit(t *testing.T) {
	candidates := []models.Candidate{
		{Skills: []string{"a", "b", "c", "d"}},
	}
	skills := NewAnalyticsService().TopSkills(candidates, 2)
	assert.Len(t, skills, 2)
}

func TestTopJobs_TiesKeepCollectionOrder(t *testing.T) {
	jobs := []models.Job{
		{ID: 1, Title: "Backend"},
		{ID: 2, Title: "Frontend"},
		{ID: 3, Title: "Design"},
	}
	applications := []models.Application{
		{JobID: 2}, {JobID: 2}, {JobID: 1}, {JobID: 1}, {JobID: 3},
	}

	top := NewAnalyticsService().TopJobs(jobs, applications, 5)

	assert.Equal(t, 1, top[0].JobID) // tied with job 2, earlier in collection
	assert.Equal(t, 2, top[1].JobID)
	assert.Equal(t, 3, top[2].JobID)
}

func TestMonthlyTrend_ZeroFillsEmptyMonths(t *testing.T) {
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	applications := []models.Application{
		{AppliedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{AppliedAt: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)},
		{
			AppliedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Status:    models.ApplicationStatusHired,
		},
		// Outside the window
		{AppliedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	trend := NewAnalyticsService().MonthlyTrend(applications, now, 6)

	assert.Len(t, trend, 6)
	assert.Equal(t, "Apr 2026", trend[0].Month)
	assert.Equal(t, "Sep 2026", trend[5].Month)
	assert.Equal(t, 0, trend[1].Applications) // May: zero-filled
	assert.Equal(t, 1, trend[2].Applications) // Jun
	assert.Equal(t, 1, trend[3].Applications) // Jul
	assert.Equal(t, 1, trend[4].Hires)        // Aug: hire recorded on updated_at
	assert.Equal(t, 1, trend[5].Applications) // Sep
}

func TestMonthlyTrend_MonthEndNowKeepsEveryMonth(t *testing.T) {
	// A report pulled on the 31st must still produce six distinct calendar
	// months; naive month arithmetic from the 31st skips short months.
	now := time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC)
	applications := []models.Application{
		{AppliedAt: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)},
		{AppliedAt: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)},
	}

	trend := NewAnalyticsService().MonthlyTrend(applications, now, 6)

	labels := make([]string, 0, len(trend))
	for _, p := range trend {
		labels = append(labels, p.Month)
	}
	assert.Equal(t, []string{
		"Dec 2025", "Jan 2026", "Feb 2026", "Mar 2026", "Apr 2026", "May 2026",
	}, labels)
	assert.Equal(t, 1, trend[2].Applications) // Feb
	assert.Equal(t, 1, trend[4].Applications) // Apr
}

func TestAverageTimeToHire(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	applications := []models.Application{
		{Status: models.ApplicationStatusHired, AppliedAt: base, UpdatedAt: base.AddDate(0, 0, 10)},
		{Status: models.ApplicationStatusHired, AppliedAt: base, UpdatedAt: base.AddDate(0, 0, 20)},
		{Status: models.ApplicationStatusApplied, AppliedAt: base, UpdatedAt: base.AddDate(0, 0, 90)},
	}

	assert.Equal(t, 15, NewAnalyticsService().AverageTimeToHire(applications))
}

func TestAverageTimeToHire_NoHires(t *testing.T) {
	applications := []models.Application{
		{Status: models.ApplicationStatusApplied},
		{Status: models.ApplicationStatusRejected},
	}
	assert.Equal(t, 0, NewAnalyticsService().AverageTimeToHire(applications))
}

func TestAverageTimeToHire_NegativeSpanCountsAsZero(t *testing.T) {
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	applications := []models.Application{
		{Status: models.ApplicationStatusHired, AppliedAt: base, UpdatedAt: base.AddDate(0, 0, -5)},
	}
	assert.Equal(t, 0, NewAnalyticsService().AverageTimeToHire(applications))
}

func TestInterviewRates(t *testing.T) {
	interviews := []models.Interview{
		{Status: models.InterviewStatusCompleted},
		{Status: models.InterviewStatusCompleted},
		{Status: models.InterviewStatusCancelled},
		{Status: models.InterviewStatusScheduled},
	}

	completion, noShow := NewAnalyticsService().InterviewRates(interviews)
	assert.Equal(t, 50, completion)
	assert.Equal(t, 25, noShow)
}

func TestInterviewRates_EmptySet(t *testing.T) {
	completion, noShow := NewAnalyticsService().InterviewRates(nil)
	assert.Equal(t, 0, completion)
	assert.Equal(t, 0, noShow)
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	candidates := []models.Candidate{
		{Status: models.CandidateStatusActive, Availability: models.AvailabilityImmediate, Skills: []string{"Go"}, ExperienceYears: intPtr(4)},
	}
	jobs := []models.Job{{ID: 1, Title: "Backend", Department: "Engineering", Status: models.JobStatusOpen}}
	applications := []models.Application{{JobID: 1, Status: models.ApplicationStatusApplied, AppliedAt: now}}

	report := NewAnalyticsService().BuildDashboard(candidates, jobs, applications, nil, now)

	assert.Equal(t, 1, report.TotalCandidates)
	assert.Equal(t, 1, report.TotalJobs)
	assert.Equal(t, 1, report.TotalApplications)
	assert.Equal(t, 0, report.TotalInterviews)
	assert.Len(t, report.MonthlyTrend, 6)
	assert.Equal(t, "Engineering", report.JobsByDepartment[0].Group)
	assert.Equal(t, "Go", report.TopSkills[0].Group)
}
