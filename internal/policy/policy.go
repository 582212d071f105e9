// Package policy is the single place where operations are mapped to the
// roles allowed to perform them. Handlers never test roles inline; the
// capability middleware consults this table instead.
package policy

type Capability string

const (
	CapPromptsManage       Capability = "prompts:manage"
	CapSubmissionsModerate Capability = "submissions:moderate"
	CapBlogAuthor          Capability = "blog:author"
	CapBlogDelete          Capability = "blog:delete"
	CapServicesManage      Capability = "services:manage"
	CapRequestsManage      Capability = "requests:manage"
)

const (
	RoleUser   = "USER"
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

var grants = map[Capability][]string{
	CapPromptsManage:       {RoleAdmin},
	CapSubmissionsModerate: {RoleAdmin},
	CapBlogAuthor:          {RoleAdmin, RoleEditor},
	CapBlogDelete:          {RoleAdmin},
	CapServicesManage:      {RoleAdmin},
	CapRequestsManage:      {RoleAdmin},
}

func Allows(role string, cap Capability) bool {
	for _, r := range grants[cap] {
		if r == role {
			return true
		}
	}
	return false
}
