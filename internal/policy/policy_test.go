package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		cap     Capability
		allowed bool
	}{
		{"admin manages prompts", RoleAdmin, CapPromptsManage, true},
		{"editor cannot manage prompts", RoleEditor, CapPromptsManage, false},
		{"user cannot manage prompts", RoleUser, CapPromptsManage, false},
		{"admin moderates", RoleAdmin, CapSubmissionsModerate, true},
		{"editor cannot moderate", RoleEditor, CapSubmissionsModerate, false},
		{"editor authors blog", RoleEditor, CapBlogAuthor, true},
		{"admin authors blog", RoleAdmin, CapBlogAuthor, true},
		{"user cannot author blog", RoleUser, CapBlogAuthor, false},
		{"editor cannot delete blog", RoleEditor, CapBlogDelete, false},
		{"admin deletes blog", RoleAdmin, CapBlogDelete, true},
		{"admin manages services", RoleAdmin, CapServicesManage, true},
		{"user cannot manage requests", RoleUser, CapRequestsManage, false},
		{"empty role never allowed", "", CapBlogAuthor, false},
		{"unknown role never allowed", "SUPERADMIN", CapBlogDelete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.allowed, Allows(tt.role, tt.cap))
		})
	}
}
