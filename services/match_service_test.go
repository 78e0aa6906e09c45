package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talenthub/models"
)

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestScore_FullProfile(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	candidate := &models.Candidate{
		Title:           "Senior Engineer",
		Skills:          []string{"Go", "Rust"},
		ExperienceYears: intPtr(6),
		LastContacted:   timePtr(now.AddDate(0, 0, -10)),
	}

	// 50 base + 20 title + 5 rust skill + 10 experience + 5 recent contact
	score := NewMatchService().Score(candidate, "senior engineer rust", now)
	assert.Equal(t, 90, score)
}

func TestScore_EmptyProfile(t *testing.T) {
	candidate := &models.Candidate{Name: "Jane Doe"}

	score := NewMatchService().Score(candidate, "anything at all", time.Now())
	assert.Equal(t, 50, score)
}

func TestScore_ShortTermsDoNotCountTowardSkills(t *testing.T) {
	candidate := &models.Candidate{
		Skills: []string{"Go", "C"},
	}

	// "go" is shorter than the minimum term length
	score := NewMatchService().Score(candidate, "go", time.Now())
	assert.Equal(t, 50, score)
}

func TestScore_MultipleSkillsEachContribute(t *testing.T) {
	candidate := &models.Candidate{
		Skills: []string{"JavaScript", "TypeScript", "CoffeeScript"},
	}

	// "script" matches all three skills: 50 + 3*5
	score := NewMatchService().Score(candidate, "script", time.Now())
	assert.Equal(t, 65, score)
}

func TestScore_StaleContactDoesNotCount(t *testing.T) {
	now := time.Now()
	candidate := &models.Candidate{
		LastContacted: timePtr(now.AddDate(0, 0, -45)),
	}

	score := NewMatchService().Score(candidate, "query", now)
	assert.Equal(t, 50, score)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	now := time.Now()
	svc := NewMatchService()

	// Many overlapping skills push the raw sum past 100
	skills := make([]string, 20)
	for i := range skills {
		skills[i] = fmt.Sprintf("engineering-%d", i)
	}
	maxed := &models.Candidate{
		Title:           "Engineer",
		Skills:          skills,
		ExperienceYears: intPtr(10),
		LastContacted:   timePtr(now),
	}

	queries := []string{"", "engineer", "engineering platform systems", "x"}
	for _, query := range queries {
		for _, c := range []*models.Candidate{maxed, {}, {Title: "Engineer"}} {
			score := svc.Score(c, query, now)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestInsights(t *testing.T) {
	now := time.Now()
	candidate := &models.Candidate{
		Title:           "Backend Developer",
		Skills:          []string{"Python", "Django"},
		ExperienceYears: intPtr(8),
		Availability:    models.AvailabilityImmediate,
	}

	insights := NewMatchService().Insights(candidate, "backend developer python", now)
	assert.Contains(t, insights, "Senior-level experience")
	assert.Contains(t, insights, "Title matches your search")
	assert.Contains(t, insights, "Python")
	assert.Contains(t, insights, "Available immediately")
}

func TestInsights_EmptyProfile(t *testing.T) {
	insights := NewMatchService().Insights(&models.Candidate{}, "query", time.Now())
	assert.Empty(t, insights)
}

func TestSuggestions_DominantSkill(t *testing.T) {
	ranked := []RankedCandidate{
		{Candidate: models.Candidate{Skills: []string{"React"}}, MatchScore: 80},
		{Candidate: models.Candidate{Skills: []string{"React"}}, MatchScore: 75},
		{Candidate: models.Candidate{Skills: []string{"Vue"}}, MatchScore: 72},
	}

	suggestions := NewMatchService().Suggestions(ranked)
	assert.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions[0], "React")
}

func TestSuggestions_WeakMatches(t *testing.T) {
	ranked := []RankedCandidate{
		{MatchScore: 50},
		{MatchScore: 55},
	}

	suggestions := NewMatchService().Suggestions(ranked)

	found := false
	for _, s := range suggestions {
		if s == "No strong matches - try broadening your search terms" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSuggestions_EmptyResultSet(t *testing.T) {
	suggestions := NewMatchService().Suggestions(nil)
	assert.Empty(t, suggestions)
}

func TestSuggestions_AtMostThree(t *testing.T) {
	ranked := []RankedCandidate{
		{Candidate: models.Candidate{Skills: []string{"Go"}, Availability: models.AvailabilityImmediate}, MatchScore: 10},
		{Candidate: models.Candidate{Skills: []string{"Go"}, Availability: models.AvailabilityImmediate}, MatchScore: 10},
	}

	suggestions := NewMatchService().Suggestions(ranked)
	assert.LessOrEqual(t, len(suggestions), 3)
}
