// File: services/matching/parse.go
package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hometeam/models"
)

const (
	// MaxResults caps how many matches a response may carry.
	MaxResults = 5
	// MaxExplanationLength bounds each explanation.
	MaxExplanationLength = 500
)

// rawMatch tolerates the loose typing of model output: ids and scores may
// arrive as numbers or strings.
type rawMatch struct {
	ID          json.RawMessage `json:"id"`
	Score       json.RawMessage `json:"score"`
	Explanation string          `json:"explanation"`
}

// ParseMatches parses the model's textual response as a JSON array. When
// strict parsing fails it falls back to extracting the first bracketed array
// substring, the same recovery the response commonly needs when the model
// wraps its JSON in prose or markdown fences.
func ParseMatches(content string) ([]models.MatchResult, error) {
	var raw []rawMatch
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		extracted, ok := extractArray(content)
		if !ok {
			return nil, fmt.Errorf("no JSON array found in ranking response")
		}
		if err := json.Unmarshal([]byte(extracted), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse ranking response: %w", err)
		}
	}
	return SanitizeMatches(raw), nil
}

// extractArray returns the substring from the first '[' through the last
// ']', mirroring a greedy bracket match.
func extractArray(content string) (string, bool) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}

// SanitizeMatches clamps and coerces every element: at most MaxResults
// entries, integer scores clamped to [0,100], explanations truncated.
func SanitizeMatches(raw []rawMatch) []models.MatchResult {
	if len(raw) > MaxResults {
		raw = raw[:MaxResults]
	}
	out := make([]models.MatchResult, 0, len(raw))
	for _, m := range raw {
		out = append(out, models.MatchResult{
			ID:          coerceInt(m.ID),
			Score:       ClampScore(coerceInt(m.Score)),
			Explanation: TruncateExplanation(m.Explanation),
		})
	}
	return out
}

// ClampResults applies the same response rules to already-typed results.
// The wizard-side client runs it even though the service clamps too; the
// client does not assume the service is trustworthy about its own contract.
func ClampResults(results []models.MatchResult) []models.MatchResult {
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	out := make([]models.MatchResult, 0, len(results))
	for _, m := range results {
		out = append(out, models.MatchResult{
			ID:          m.ID,
			Score:       ClampScore(m.Score),
			Explanation: TruncateExplanation(m.Explanation),
		})
	}
	return out
}

// ClampScore constrains a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// TruncateExplanation bounds an explanation to MaxExplanationLength runes.
func TruncateExplanation(s string) string {
	runes := []rune(s)
	if len(runes) > MaxExplanationLength {
		return string(runes[:MaxExplanationLength])
	}
	return s
}

// coerceInt turns a raw JSON value into an int, accepting numbers and
// numeric strings; anything else coerces to 0.
func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(math.Trunc(f))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return int(math.Trunc(n))
		}
	}
	return 0
}
