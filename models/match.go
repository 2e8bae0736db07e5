package models

// MatchPatient is the sanitized patient subset forwarded to the matching
// service. It is a transient value, never persisted.
type MatchPatient struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Categories        []string `json:"categories"`
	SessionPreference string   `json:"sessionPreference"`
	BudgetMax         int      `json:"budgetMax"`
	Approaches        []string `json:"approaches"`
}

// MatchRequest is the payload of POST /api/match. Patient is a pointer so a
// body that omits it entirely is distinguishable from an empty profile and
// can be rejected as malformed.
type MatchRequest struct {
	Patient       *MatchPatient    `json:"patient"`
	Practitioners []RankingSummary `json:"practitioners"`
}

// MatchResult is a ranked, explained practitioner recommendation. Produced
// fresh per request; not cached.
type MatchResult struct {
	ID          int    `json:"id"`
	Score       int    `json:"score"`       // 0..100
	Explanation string `json:"explanation"` // <= 500 chars
}

// MatchResponse is the success body of POST /api/match.
type MatchResponse struct {
	Matches []MatchResult `json:"matches"`
}
