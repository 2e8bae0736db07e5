// File: services/matching/sanitize.go
package matching

import (
	"hometeam/models"
	"hometeam/utils"
)

// Per-field prompt budgets. Client-side sanitization is never trusted; the
// service re-sanitizes every string with these caps before prompt assembly.
const (
	maxNameLen        = 50
	maxDescriptionLen = 1000
	maxTokenLen       = 50
	maxSessionPrefLen = 20
	maxBioLen         = 500
	maxFieldLen       = 100
	maxCategories     = 15
	maxApproaches     = 10
	maxSessionTypes   = 5
	maxBudget         = 10000

	// MaxRoster bounds how many practitioners a request may carry.
	MaxRoster = 50
)

// SanitizePatient applies the per-field caps to a patient profile.
func SanitizePatient(p models.MatchPatient) models.MatchPatient {
	budget := p.BudgetMax
	if budget < 0 {
		budget = 0
	}
	if budget > maxBudget {
		budget = maxBudget
	}
	return models.MatchPatient{
		Name:              utils.SanitizeForPrompt(p.Name, maxNameLen),
		Description:       utils.SanitizeForPrompt(p.Description, maxDescriptionLen),
		Categories:        utils.SanitizeForPromptList(p.Categories, maxCategories, maxTokenLen),
		SessionPreference: utils.SanitizeForPrompt(p.SessionPreference, maxSessionPrefLen),
		BudgetMax:         budget,
		Approaches:        utils.SanitizeForPromptList(p.Approaches, maxApproaches, maxTokenLen),
	}
}

// SanitizeRoster strips the roster down to sanitized summaries, keeping at
// most MaxRoster entries.
func SanitizeRoster(roster []models.RankingSummary) []models.RankingSummary {
	if len(roster) > MaxRoster {
		roster = roster[:MaxRoster]
	}
	out := make([]models.RankingSummary, 0, len(roster))
	for _, p := range roster {
		price := p.StartingPrice
		if price < 0 {
			price = 0
		}
		rating := p.Rating
		if rating < 0 {
			rating = 0
		}
		reviewCount := p.ReviewCount
		if reviewCount < 0 {
			reviewCount = 0
		}
		out = append(out, models.RankingSummary{
			ID:            p.ID,
			Name:          utils.SanitizeForPrompt(p.Name, maxFieldLen),
			Credentials:   utils.SanitizeForPrompt(p.Credentials, maxFieldLen),
			Title:         utils.SanitizeForPrompt(p.Title, maxFieldLen),
			Location:      utils.SanitizeForPrompt(p.Location, maxFieldLen),
			Specialties:   utils.SanitizeForPromptList(p.Specialties, maxApproaches, maxTokenLen),
			Approaches:    utils.SanitizeForPromptList(p.Approaches, maxApproaches, maxTokenLen),
			Sports:        utils.SanitizeForPromptList(p.Sports, maxApproaches, maxTokenLen),
			SessionTypes:  utils.SanitizeForPromptList(p.SessionTypes, maxSessionTypes, maxSessionPrefLen),
			Bio:           utils.SanitizeForPrompt(p.Bio, maxBioLen),
			StartingPrice: price,
			Rating:        rating,
			ReviewCount:   reviewCount,
		})
	}
	return out
}
