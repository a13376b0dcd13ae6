package rbac

import "testing"

func TestCan(t *testing.T) {
	cases := []struct {
		name   string
		role   Role
		action Action
		allow  bool
	}{
		{name: "viewer read", role: RoleViewer, action: ActionRead, allow: true},
		{name: "viewer edit", role: RoleViewer, action: ActionEdit, allow: false},
		{name: "viewer publish", role: RoleViewer, action: ActionPublish, allow: false},
		{name: "editor edit", role: RoleEditor, action: ActionEdit, allow: true},
		{name: "editor publish", role: RoleEditor, action: ActionPublish, allow: false},
		{name: "owner publish", role: RoleOwner, action: ActionPublish, allow: true},
		{name: "unknown read", role: Role("admin"), action: ActionRead, allow: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Can(tc.role, tc.action); got != tc.allow {
				t.Fatalf("Can(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.allow)
			}
		})
	}
}

func TestFromHeader(t *testing.T) {
	cases := []struct {
		value    string
		fallback Role
		want     Role
	}{
		{value: "", fallback: RoleEditor, want: RoleEditor},
		{value: "  ", fallback: RoleOwner, want: RoleOwner},
		{value: "Owner", fallback: RoleViewer, want: RoleOwner},
		{value: "superuser", fallback: RoleOwner, want: RoleViewer},
	}
	for _, tc := range cases {
		if got := FromHeader(tc.value, tc.fallback); got != tc.want {
			t.Fatalf("FromHeader(%q, %q) = %q, want %q", tc.value, tc.fallback, got, tc.want)
		}
	}
}
