// File: services/matching/client.go
package matching

import (
	"context"

	"hometeam/models"
	"hometeam/utils"
)

// DefaultMatchClient implements Client. It re-sanitizes the wizard's fields
// independently of any earlier display-time sanitization, projects the
// roster down to ranking summaries and bounds it at MaxRoster before
// sending. Results referencing unknown practitioner ids are preserved; the
// renderer joins against the roster and drops them there.
type DefaultMatchClient struct {
	Matcher Matcher
}

func (c *DefaultMatchClient) RequestMatches(ctx context.Context, data models.WizardData, roster []models.Practitioner) ([]models.MatchResult, error) {
	patient := models.MatchPatient{
		Name:              utils.SanitizeForPrompt(data.Name, maxNameLen),
		Description:       utils.SanitizeForPrompt(data.Description, maxDescriptionLen),
		Categories:        utils.SanitizeForPromptList(data.SelectedCategories, maxCategories, maxTokenLen),
		SessionPreference: utils.SanitizeForPrompt(data.SessionPreference, maxSessionPrefLen),
		BudgetMax:         data.BudgetMax,
		Approaches:        utils.SanitizeForPromptList(data.SelectedApproaches, maxApproaches, maxTokenLen),
	}

	// Truncate rather than error; ranking the first 50 beats failing.
	if len(roster) > MaxRoster {
		roster = roster[:MaxRoster]
	}
	summaries := make([]models.RankingSummary, 0, len(roster))
	for _, p := range roster {
		summaries = append(summaries, ProjectPractitioner(p))
	}

	results, err := c.Matcher.Match(ctx, models.MatchRequest{
		Patient:       &patient,
		Practitioners: summaries,
	})
	if err != nil {
		return nil, err
	}
	return ClampResults(results), nil
}

// ProjectPractitioner reduces a practitioner to the fields relevant to
// ranking — identity, descriptive text, structured tags, price, rating —
// never the full entity, bounding payload size and avoiding leaking
// unrelated fields.
func ProjectPractitioner(p models.Practitioner) models.RankingSummary {
	return models.RankingSummary{
		ID:            p.ID,
		Name:          p.Name,
		Credentials:   p.Credentials,
		Title:         p.Title,
		Location:      p.Location,
		Specialties:   p.Specialties,
		Approaches:    p.Approaches,
		Sports:        p.Sports,
		SessionTypes:  p.SessionTypes,
		Bio:           p.Bio,
		StartingPrice: int(p.StartingPrice),
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
	}
}
