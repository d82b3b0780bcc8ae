package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewPageMatrix(t *testing.T) {
	cases := []struct {
		role string
		page string
		want bool
	}{
		{RoleViewer, "dashboard", true},
		{RoleViewer, "calendar", true},
		{RoleViewer, "forum", true},
		{RoleViewer, "profile", true},
		{RoleViewer, "tasks", false},
		{RoleViewer, "meetings", false},
		{RoleViewer, "contacts", false},
		{RoleViewer, "users", false},
		{RoleViewer, "deletion-logs", false},

		{RoleSpecial, "tasks", true},
		{RoleSpecial, "meetings", true},
		{RoleSpecial, "budget", true},
		{RoleSpecial, "risks", true},
		{RoleSpecial, "documents", true},
		{RoleSpecial, "contacts", true},
		{RoleSpecial, "users", false},
		{RoleSpecial, "deletion-logs", false},

		{RoleAdmin, "tasks", true},
		{RoleAdmin, "users", true},
		{RoleAdmin, "deletion-logs", false},

		{RoleSuperAdmin, "users", true},
		{RoleSuperAdmin, "deletion-logs", true},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanViewPage(tc.role, tc.page), "role=%s page=%s", tc.role, tc.page)
	}
}

func TestCanViewPageDeniesUnknowns(t *testing.T) {
	assert.False(t, CanViewPage(RoleSuperAdmin, "settings"))
	assert.False(t, CanViewPage("", "dashboard"))
	assert.False(t, CanViewPage("owner", "dashboard"))
}

func TestRoleTiers(t *testing.T) {
	assert.False(t, IsSpecialOrAbove(RoleViewer))
	assert.True(t, IsSpecialOrAbove(RoleSpecial))
	assert.True(t, IsSpecialOrAbove(RoleAdmin))
	assert.True(t, IsSpecialOrAbove(RoleSuperAdmin))

	assert.False(t, IsAdmin(RoleSpecial))
	assert.True(t, IsAdmin(RoleAdmin))
	assert.True(t, IsAdmin(RoleSuperAdmin))

	assert.False(t, IsSuperAdmin(RoleAdmin))
	assert.True(t, IsSuperAdmin(RoleSuperAdmin))
	assert.False(t, IsSuperAdmin("SUPERADMIN"))
}

func TestRoleGroupsAreOrderedSubsets(t *testing.T) {
	assert.Subset(t, NonViewerRoles, SpecialAndAbove)
	assert.Subset(t, SpecialAndAbove, AdminAndAbove)
	assert.Subset(t, AdminAndAbove, SuperAdminOnly)
	assert.NotContains(t, NonViewerRoles, RoleViewer)
}
