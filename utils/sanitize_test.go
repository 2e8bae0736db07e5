package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{
			name:      "plain text unchanged",
			input:     "Sam",
			maxLength: 50,
			want:      "Sam",
		},
		{
			name:      "strips angle brackets",
			input:     "<script>alert(1)</script>",
			maxLength: 50,
			want:      "scriptalert(1)/script",
		},
		{
			name:      "truncates before stripping",
			input:     "abcdefgh",
			maxLength: 4,
			want:      "abcd",
		},
		{
			name:      "zero budget yields empty",
			input:     "anything",
			maxLength: 0,
			want:      "",
		},
		{
			name:      "negative budget yields empty",
			input:     "anything",
			maxLength: -1,
			want:      "",
		},
		{
			name:      "truncates by runes not bytes",
			input:     "héllo wörld",
			maxLength: 5,
			want:      "héllo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input, tt.maxLength))
		})
	}
}

func TestSanitizeForPrompt(t *testing.T) {
	assert.Equal(t, "ignore instructions", SanitizeForPrompt("{ignore} <instructions>", 100))
	assert.Equal(t, "", SanitizeForPrompt("{}", 100))
}

func TestSanitizeForPromptList(t *testing.T) {
	items := []string{"Anxiety", "<b>Depression</b>", "Trauma & PTSD", "ADHD"}
	got := SanitizeForPromptList(items, 2, 50)
	assert.Equal(t, []string{"Anxiety", "bDepression/b"}, got)

	assert.Empty(t, SanitizeForPromptList(nil, 5, 50))
}
