package desktop

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestSanitizeName_DerivesSafeNames tests name sanitization
func TestSanitizeName_DerivesSafeNames(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		description string
	}{
		{
			name:        "PlainBinary",
			input:       "/usr/local/bin/mytool",
			expected:    "mytool",
			description: "Directories are dropped",
		},
		{
			name:        "ExtensionDropped",
			input:       "MyTool.AppImage",
			expected:    "MyTool",
			description: "The extension is stripped",
		},
		{
			name:        "SpacesBecomeDashes",
			input:       "My Cool Tool",
			expected:    "My-Cool-Tool",
			description: "Spaces map to dashes",
		},
		{
			name:        "SpecialsRemoved",
			input:       "to@ol!v2",
			expected:    "toolv2",
			description: "Characters outside the safe set are removed",
		},
		{
			name:        "EdgesTrimmed",
			input:       "-.tool_.",
			expected:    "tool",
			description: "Leading and trailing separators are trimmed",
		},
		{
			name:        "NothingLeft",
			input:       "!!!",
			expected:    "app",
			description: "A name that sanitizes to nothing becomes app",
		},
		{
			name:        "Empty",
			input:       "",
			expected:    "app",
			description: "Empty input becomes app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeName(tt.input), tt.description)
		})
	}
}

// TestSanitizeName_Properties checks sanitization invariants
func TestSanitizeName_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		got := SanitizeName(input)

		assert.NotEmpty(t, got, "sanitized names are never empty")
		for _, r := range got {
			ok := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.'
			assert.True(t, ok, "unexpected rune %q in %q", r, got)
		}
	})
}
