package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deletionLogRoute "zarfuel_backend/internals/features/audit/deletionlogs/route"
	profileRoute "zarfuel_backend/internals/features/users/profiles/route"
)

// AdminRoutes mounts the management surface behind /api/a.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	profileRoute.ProfileAdminRoutes(api, db)
	deletionLogRoute.DeletionLogAdminRoutes(api, db)
}
