package constants

import "fmt"

// Role names as stored in profiles.role
const (
	RoleViewer     = "viewer"
	RoleSpecial    = "special"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Role gate error templates
const (
	ErrOnlySpecialCanAccess    = "❌ Only special, admin, or superadmin may access %s."
	ErrOnlyAdminsCanAccess     = "❌ Only admin or superadmin may access %s."
	ErrOnlySuperAdminCanAccess = "❌ Only superadmin may access %s."
)

func RoleErrorSpecial(feature string) string {
	return fmt.Sprintf(ErrOnlySpecialCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleViewer,
		RoleSpecial,
		RoleAdmin,
		RoleSuperAdmin,
	}

	// Everyone except viewers; the forum fan-out audience.
	NonViewerRoles = []string{
		RoleSpecial,
		RoleAdmin,
		RoleSuperAdmin,
	}

	SpecialAndAbove = []string{
		RoleSpecial,
		RoleAdmin,
		RoleSuperAdmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

// rank orders roles; unknown roles rank below viewer.
func rank(role string) int {
	switch role {
	case RoleViewer:
		return 1
	case RoleSpecial:
		return 2
	case RoleAdmin:
		return 3
	case RoleSuperAdmin:
		return 4
	default:
		return 0
	}
}

// pageMinRole maps a page slug to the minimum role that may open it.
// Pages absent from the map are denied outright.
var pageMinRole = map[string]string{
	"dashboard":     RoleViewer,
	"calendar":      RoleViewer,
	"forum":         RoleViewer,
	"profile":       RoleViewer,
	"tasks":         RoleSpecial,
	"meetings":      RoleSpecial,
	"budget":        RoleSpecial,
	"risks":         RoleSpecial,
	"documents":     RoleSpecial,
	"contacts":      RoleSpecial,
	"users":         RoleAdmin,
	"deletion-logs": RoleSuperAdmin,
}

// CanViewPage reports whether a role may open a page. Unknown pages and
// unknown roles are denied; this never returns an error.
func CanViewPage(role, page string) bool {
	min, ok := pageMinRole[page]
	if !ok {
		return false
	}
	return rank(role) >= rank(min) && rank(role) > 0
}

func IsSpecialOrAbove(role string) bool {
	return rank(role) >= rank(RoleSpecial)
}

func IsAdmin(role string) bool {
	return rank(role) >= rank(RoleAdmin)
}

func IsSuperAdmin(role string) bool {
	return role == RoleSuperAdmin
}
