package services

// Subscription plan identifiers
const (
	PlanFree    = "free"
	PlanStarter = "starter"
	PlanPro     = "pro"
)

// Capabilities describes what a subscription plan unlocks. Handlers receive it
// explicitly; nothing reads plan state from ambient context.
type Capabilities struct {
	Plan                 string `json:"plan"`
	MaxSearchResults     int    `json:"max_search_results"`
	MaxSavedSearches     int    `json:"max_saved_searches"`
	HistoryRetentionDays int    `json:"history_retention_days"`
	AdvancedFilters      bool   `json:"advanced_filters"`
	AIMatching           bool   `json:"ai_matching"`
	Reports              bool   `json:"reports"`
	Export               bool   `json:"export"`
}

// tierTable is static configuration, not persisted state.
var tierTable = map[string]Capabilities{
	PlanFree: {
		Plan:                 PlanFree,
		MaxSearchResults:     25,
		MaxSavedSearches:     3,
		HistoryRetentionDays: 7,
	},
	PlanStarter: {
		Plan:                 PlanStarter,
		MaxSearchResults:     100,
		MaxSavedSearches:     10,
		HistoryRetentionDays: 30,
		AdvancedFilters:      true,
		Reports:              true,
	},
	PlanPro: {
		Plan:                 PlanPro,
		MaxSearchResults:     500,
		MaxSavedSearches:     50,
		HistoryRetentionDays: 90,
		AdvancedFilters:      true,
		AIMatching:           true,
		Reports:              true,
		Export:               true,
	},
}

// CapabilitiesForPlan resolves a plan identifier to its capability set.
// Unknown plans downgrade to the free tier.
func CapabilitiesForPlan(plan string) Capabilities {
	if caps, ok := tierTable[plan]; ok {
		return caps
	}
	return tierTable[PlanFree]
}
