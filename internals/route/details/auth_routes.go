package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "zarfuel_backend/internals/features/users/auth/route"
)

// AuthRoutes mounts the unauthenticated auth endpoints under /api.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)
}
