package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemporaryID_NoCollisions(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := NewTemporaryID()
		require.False(t, seen[id], "duplicate temporary id %q", id)
		seen[id] = true
		assert.True(t, IsTemporary(id), "generated id %q must classify as temporary", id)
	}
}

func TestIsTemporary(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"482", false},
		{"0", false},
		{"123456789012345", false},
		{"", true},
		{"1724600000.123", true},
		{"-1", true},
		{"12a", true},
		{"1.5e3", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTemporary(tt.id), "id %q", tt.id)
	}
}
