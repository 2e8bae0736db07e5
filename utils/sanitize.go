// File: utils/sanitize.go
package utils

import "strings"

// Sanitize truncates input to maxLength runes and strips characters that
// could be interpreted as markup. It never fails; a non-positive maxLength
// yields the empty string. Callers apply it independently at the display
// boundary and at the prompt boundary, each with its own length budget.
func Sanitize(input string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(input)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	out := string(runes)
	out = strings.ReplaceAll(out, "<", "")
	return strings.ReplaceAll(out, ">", "")
}

// SanitizeForPrompt additionally strips braces, which carry structural
// meaning inside model prompts.
func SanitizeForPrompt(input string, maxLength int) string {
	out := Sanitize(input, maxLength)
	out = strings.ReplaceAll(out, "{", "")
	return strings.ReplaceAll(out, "}", "")
}

// SanitizeForPromptList sanitizes every element of a list with a shared
// per-token budget, keeping at most limit entries.
func SanitizeForPromptList(items []string, limit, maxLength int) []string {
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, SanitizeForPrompt(item, maxLength))
	}
	return out
}
