package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"talenthub/models"
)

// MatchService computes heuristic relevance scores for candidates against a
// free-text query. The score is a fixed additive formula over profile fields,
// not a learned model: there are no weights to train and no feedback loop.
type MatchService struct{}

func NewMatchService() *MatchService {
	return &MatchService{}
}

const (
	baseScore          = 50
	titleMatchBonus    = 20
	skillTermBonus     = 5
	experienceBonus    = 10
	recentContactBonus = 5

	minSkillTermLen       = 4 // query terms shorter than this don't count toward skills
	recentContactDays     = 30
	seniorExperienceYears = 5
)

// Score returns a relevance score in [0, 100] for the candidate against the
// query. Pure and deterministic given now.
func (s *MatchService) Score(c *models.Candidate, query string, now time.Time) int {
	score := baseScore
	loweredQuery := strings.ToLower(query)

	// Title appearing inside the query is the strongest signal.
	if c.Title != "" && strings.Contains(loweredQuery, strings.ToLower(c.Title)) {
		score += titleMatchBonus
	}

	// Each skill containing a long-enough query term contributes independently.
	for _, term := range strings.Fields(loweredQuery) {
		if len(term) < minSkillTermLen {
			continue
		}
		for _, skill := range c.Skills {
			if strings.Contains(strings.ToLower(skill), term) {
				score += skillTermBonus
			}
		}
	}

	if c.ExperienceYears != nil && *c.ExperienceYears >= 3 {
		score += experienceBonus
	}

	if c.LastContacted != nil && !c.LastContacted.Before(now.AddDate(0, 0, -recentContactDays)) && !c.LastContacted.After(now) {
		score += recentContactBonus
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Insights returns short explanation strings for a candidate's score, joined
// with a separator. Generated by fixed conditionals over the same fields the
// score uses.
func (s *MatchService) Insights(c *models.Candidate, query string, now time.Time) string {
	var insights []string

	if c.ExperienceYears != nil && *c.ExperienceYears >= seniorExperienceYears {
		insights = append(insights, "Senior-level experience")
	}
	if c.Title != "" && strings.Contains(strings.ToLower(query), strings.ToLower(c.Title)) {
		insights = append(insights, "Title matches your search")
	}
	if matched := s.matchedSkills(c, query); len(matched) > 0 {
		insights = append(insights, fmt.Sprintf("Relevant skills: %s", strings.Join(matched, ", ")))
	}
	if c.Availability == models.AvailabilityImmediate {
		insights = append(insights, "Available immediately")
	}
	if c.LastContacted != nil && !c.LastContacted.Before(now.AddDate(0, 0, -recentContactDays)) {
		insights = append(insights, "Recently contacted")
	}

	return strings.Join(insights, " • ")
}

func (s *MatchService) matchedSkills(c *models.Candidate, query string) []string {
	var matched []string
	for _, skill := range c.Skills {
		loweredSkill := strings.ToLower(skill)
		for _, term := range strings.Fields(strings.ToLower(query)) {
			if len(term) >= minSkillTermLen && strings.Contains(loweredSkill, term) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}

// Suggestions returns up to three query-level hints for a result set, in a
// fixed priority order: dominant skill, availability concentration, weak
// overall match.
func (s *MatchService) Suggestions(ranked []RankedCandidate) []string {
	suggestions := []string{}
	total := len(ranked)
	if total == 0 {
		return suggestions
	}

	// Dominant skill: top skill held by more than 30% of results.
	skillCounts := map[string]int{}
	var skillOrder []string
	for _, rc := range ranked {
		for _, skill := range rc.Skills {
			if _, seen := skillCounts[skill]; !seen {
				skillOrder = append(skillOrder, skill)
			}
			skillCounts[skill]++
		}
	}
	sort.SliceStable(skillOrder, func(i, j int) bool {
		return skillCounts[skillOrder[i]] > skillCounts[skillOrder[j]]
	})
	if len(skillOrder) > 0 {
		top := skillOrder[0]
		if skillCounts[top]*100 > total*30 {
			suggestions = append(suggestions, fmt.Sprintf("%s is common in these results - try filtering by it", top))
		}
	}

	immediate := 0
	highScores := 0
	for _, rc := range ranked {
		if rc.Availability == models.AvailabilityImmediate {
			immediate++
		}
		if rc.MatchScore >= 70 {
			highScores++
		}
	}
	if immediate*2 > total {
		suggestions = append(suggestions, "Most of these candidates are available immediately")
	}
	if highScores == 0 {
		suggestions = append(suggestions, "No strong matches - try broadening your search terms")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
