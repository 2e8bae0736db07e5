// File: services/matching/service.go
package matching

import (
	"context"
	"time"

	"hometeam/models"

	"go.uber.org/zap"
)

// DefaultMatchingService implements Matcher against a ranking model. Ranker
// is nil when no API key is configured.
type DefaultMatchingService struct {
	Ranker  RankerClient
	Timeout time.Duration
}

const defaultRankingTimeout = 30 * time.Second

// Match re-sanitizes the request, forwards a constrained prompt to the
// ranking model and validates and clamps the structured response. Upstream
// detail is logged, never returned.
func (s *DefaultMatchingService) Match(ctx context.Context, req models.MatchRequest) ([]models.MatchResult, error) {
	if s.Ranker == nil {
		return nil, ErrNotConfigured
	}
	if req.Patient == nil {
		return nil, &ValidationError{Message: "Invalid patient data."}
	}
	if len(req.Practitioners) == 0 {
		return nil, &ValidationError{Message: "Invalid practitioner data."}
	}
	if len(req.Practitioners) > MaxRoster {
		return nil, &ValidationError{Message: "Too many practitioners."}
	}

	patient := SanitizePatient(*req.Patient)
	roster := SanitizeRoster(req.Practitioners)

	userPrompt, err := BuildUserPrompt(patient, roster)
	if err != nil {
		zap.L().Error("failed to build ranking prompt", zap.Error(err))
		return nil, ErrUpstream
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultRankingTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := s.Ranker.GenerateRanking(callCtx, SystemPrompt(), userPrompt)
	if err != nil {
		zap.L().Error("ranking model call failed", zap.Error(err))
		return nil, ErrUpstream
	}

	matches, err := ParseMatches(content)
	if err != nil {
		zap.L().Error("could not parse ranking response", zap.Error(err), zap.String("content", content))
		return nil, ErrUpstream
	}
	return matches, nil
}
