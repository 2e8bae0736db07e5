package matching

import (
	"context"

	"hometeam/models"
)

// Matcher ranks practitioners for a patient profile. The HTTP boundary and
// the wizard's client both sit on this interface.
type Matcher interface {
	Match(ctx context.Context, req models.MatchRequest) ([]models.MatchResult, error)
}

// Client is the wizard-side contract: it builds a sanitized request from
// wizard data plus the practitioner roster and interprets the response.
type Client interface {
	RequestMatches(ctx context.Context, data models.WizardData, roster []models.Practitioner) ([]models.MatchResult, error)
}

// RankerClient is the external language-model boundary.
type RankerClient interface {
	GenerateRanking(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
