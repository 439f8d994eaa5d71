package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToken(t *testing.T) {
	digest := HashToken("some.bearer.token")

	assert.Len(t, digest, 64)
	assert.True(t, ValidateHash(digest))

	// Same input, same digest. Different input, different digest.
	assert.Equal(t, digest, HashToken("some.bearer.token"))
	assert.NotEqual(t, digest, HashToken("some.other.token"))
}

func TestValidateHash(t *testing.T) {
	tests := []struct {
		name  string
		hash  string
		valid bool
	}{
		{
			name:  "valid digest",
			hash:  HashToken("token"),
			valid: true,
		},
		{
			name:  "too short",
			hash:  "abc123",
			valid: false,
		},
		{
			name:  "uppercase hex rejected",
			hash:  "ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789",
			valid: false,
		},
		{
			name:  "non-hex characters",
			hash:  "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
			valid: false,
		},
		{
			name:  "empty",
			hash:  "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateHash(tt.hash))
		})
	}
}
