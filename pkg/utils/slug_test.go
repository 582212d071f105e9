package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidSlug(t *testing.T) {
	valid := []string{"a", "hello-world", "prompting-101", "2026-roadmap", "---"}
	for _, s := range valid {
		require.Truef(t, ValidSlug(s), "%q should be valid", s)
	}

	invalid := []string{"", "Hello", "has space", "under_score", "dot.dot", "ünïcode", "slash/slug", "trailing!"}
	for _, s := range invalid {
		require.Falsef(t, ValidSlug(s), "%q should be invalid", s)
	}
}
