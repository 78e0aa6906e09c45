package services

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"talenthub/models"
)

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// Sort keys
const (
	SortByScore  = "score"
	SortByDate   = "date"
	SortByName   = "name"
	SortBySalary = "salary"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SearchFilters holds the optional filter dimensions applied to a candidate
// collection. An empty string or FilterAll disables a dimension; active
// dimensions are combined with AND.
type SearchFilters struct {
	Query             string `form:"q"`
	Status            string `form:"status"`
	Availability      string `form:"availability"`
	Skill             string `form:"skill"`
	ExperienceBracket string `form:"experience"`
	SalaryBucket      string `form:"salary"`
	SortBy            string `form:"sort_by"`
	SortOrder         string `form:"sort_order"`
}

// RankedCandidate is a candidate annotated with its match score and insights.
type RankedCandidate struct {
	models.Candidate
	MatchScore int    `json:"match_score"`
	Insights   string `json:"insights,omitempty"`
}

// SearchResult is the response of a candidate search: scored records plus
// query-level suggestions.
type SearchResult struct {
	Candidates  []RankedCandidate `json:"candidates"`
	Suggestions []string          `json:"suggestions"`
	Total       int               `json:"total"`
	Truncated   bool              `json:"truncated"`
}

// SearchService filters, ranks and sorts candidate collections in memory.
// All methods are pure; the caller supplies the records and the clock.
type SearchService struct {
	match    *MatchService
	collator *collate.Collator
}

func NewSearchService() *SearchService {
	return &SearchService{
		match:    NewMatchService(),
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Search applies filters, optional ranking and sorting, then truncates to the
// plan's result cap. Ranking runs only when the plan includes it and a query
// is present; otherwise every record carries a zero score.
func (s *SearchService) Search(candidates []models.Candidate, filters SearchFilters, caps Capabilities, now time.Time) SearchResult {
	filtered := s.FilterCandidates(candidates, filters, caps)

	ranked := make([]RankedCandidate, 0, len(filtered))
	rank := caps.AIMatching && strings.TrimSpace(filters.Query) != ""
	for i := range filtered {
		rc := RankedCandidate{Candidate: filtered[i]}
		if rank {
			rc.MatchScore = s.match.Score(&filtered[i], filters.Query, now)
			rc.Insights = s.match.Insights(&filtered[i], filters.Query, now)
		}
		ranked = append(ranked, rc)
	}

	s.SortCandidates(ranked, filters.SortBy, filters.SortOrder)

	result := SearchResult{Total: len(ranked)}
	if caps.MaxSearchResults > 0 && len(ranked) > caps.MaxSearchResults {
		ranked = ranked[:caps.MaxSearchResults]
		result.Truncated = true
	}
	result.Candidates = ranked
	if rank {
		result.Suggestions = s.match.Suggestions(ranked)
	} else {
		result.Suggestions = []string{}
	}
	return result
}

// FilterCandidates returns the subset of candidates satisfying every active
// filter dimension. Bracket dimensions require the advanced-filters capability.
func (s *SearchService) FilterCandidates(candidates []models.Candidate, f SearchFilters, caps Capabilities) []models.Candidate {
	out := []models.Candidate{}
	for _, c := range candidates {
		if !matchesText(&c, f.Query) {
			continue
		}
		if filterActive(f.Status) && c.Status != f.Status {
			continue
		}
		if filterActive(f.Availability) && c.Availability != f.Availability {
			continue
		}
		if filterActive(f.Skill) && !hasSkill(&c, f.Skill) {
			continue
		}
		if caps.AdvancedFilters {
			if filterActive(f.ExperienceBracket) && !inExperienceBracket(c.ExperienceYears, f.ExperienceBracket) {
				continue
			}
			if filterActive(f.SalaryBucket) && !inSalaryBucket(c.ExpectedSalary, f.SalaryBucket) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func filterActive(value string) bool {
	return value != "" && value != FilterAll
}

// matchesText reports whether any whitespace-separated query term is a
// case-insensitive substring of the candidate's name, email, title, location,
// skills or tags. An empty query matches everything.
func matchesText(c *models.Candidate, query string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}

	fields := []string{
		strings.ToLower(c.Name),
		strings.ToLower(c.Email),
		strings.ToLower(c.Title),
		strings.ToLower(c.Location),
	}
	for _, skill := range c.Skills {
		fields = append(fields, strings.ToLower(skill))
	}
	for _, tag := range c.Tags {
		fields = append(fields, strings.ToLower(tag))
	}

	for _, term := range terms {
		for _, field := range fields {
			if strings.Contains(field, term) {
				return true
			}
		}
	}
	return false
}

func hasSkill(c *models.Candidate, skill string) bool {
	for _, s := range c.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// inExperienceBracket reports whether years falls inside the named bracket.
// Candidates without a recorded experience value belong to no bracket.
func inExperienceBracket(years *int, bracket string) bool {
	if years == nil {
		return false
	}
	y := *years
	switch bracket {
	case "0-2":
		return y >= 0 && y <= 2
	case "3-5":
		return y >= 3 && y <= 5
	case "6-10":
		return y >= 6 && y <= 10
	case "10+":
		return y >= 10
	}
	return false
}

// inSalaryBucket reports whether the expected salary falls inside the named
// bucket. A missing salary compares as zero.
func inSalaryBucket(salary *float64, bucket string) bool {
	v := 0.0
	if salary != nil {
		v = *salary
	}
	switch bucket {
	case "0-50k":
		return v >= 0 && v < 50000
	case "50k-100k":
		return v >= 50000 && v < 100000
	case "100k-150k":
		return v >= 100000 && v < 150000
	case "150k+":
		return v >= 150000
	}
	return false
}

// SortCandidates orders ranked candidates in place by the given key and
// direction. Missing salaries compare as zero; ties fall back to record ID so
// the order is deterministic. Name comparison is collation-aware.
func (s *SearchService) SortCandidates(ranked []RankedCandidate, sortBy, sortOrder string) {
	desc := sortOrder == SortDesc
	if sortOrder == "" {
		// Score and date views read best-first by default.
		desc = sortBy == SortByScore || sortBy == SortByDate || sortBy == ""
	}

	less := func(a, b *RankedCandidate) int {
		switch sortBy {
		case SortByName:
			return s.collator.CompareString(a.Name, b.Name)
		case SortBySalary:
			return compareFloat(salaryOrZero(a.ExpectedSalary), salaryOrZero(b.ExpectedSalary))
		case SortByDate:
			return a.CreatedAt.Compare(b.CreatedAt)
		default: // score
			return a.MatchScore - b.MatchScore
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		cmp := less(&ranked[i], &ranked[j])
		if cmp == 0 {
			cmp = ranked[i].ID - ranked[j].ID
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func salaryOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
