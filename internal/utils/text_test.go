package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanUTF8(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		wasModified bool
	}{
		{
			name:        "clean text untouched",
			input:       "Plastic bottles near the pier",
			expected:    "Plastic bottles near the pier",
			wasModified: false,
		},
		{
			name:        "nul bytes removed",
			input:       "tide line\x00debris",
			expected:    "tide linedebris",
			wasModified: true,
		},
		{
			name:        "invalid utf8 removed",
			input:       "driftwood\xff\xfe count",
			expected:    "driftwood count",
			wasModified: true,
		},
		{
			name:        "multibyte text preserved",
			input:       "praia limpa 海岸",
			expected:    "praia limpa 海岸",
			wasModified: false,
		},
		{
			name:        "empty string",
			input:       "",
			expected:    "",
			wasModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, modified := CleanUTF8(tt.input)
			assert.Equal(t, tt.expected, cleaned)
			assert.Equal(t, tt.wasModified, modified)
		})
	}
}
