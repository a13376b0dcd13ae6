// Package rbac decides what a site collaborator may do with a project.
// Authentication happens upstream; the gateway forwards the resolved role.
package rbac

import "strings"

type Role string
type Action string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

const (
	ActionRead    Action = "read"
	ActionEdit    Action = "edit"
	ActionPublish Action = "publish"
)

// Header carries the caller's role on every project request.
const Header = "X-Vitrin-Role"

func Can(role Role, action Action) bool {
	switch role {
	case RoleOwner:
		return action == ActionRead || action == ActionEdit || action == ActionPublish
	case RoleEditor:
		return action == ActionRead || action == ActionEdit
	case RoleViewer:
		return action == ActionRead
	default:
		return false
	}
}

// Normalize maps unknown roles to viewer.
func Normalize(role string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(role))); r {
	case RoleViewer, RoleEditor, RoleOwner:
		return r
	default:
		return RoleViewer
	}
}

// FromHeader resolves the header value, using fallback when the header is
// absent. A present but unrecognised value still degrades to viewer.
func FromHeader(value string, fallback Role) Role {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return Normalize(value)
}
