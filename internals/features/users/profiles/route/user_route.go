package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/users/profiles/controller"
)

func ProfileUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	profiles := api.Group("/profiles")
	profiles.Get("/me", ctrl.GetMe)    // 🔍 Own profile
	profiles.Put("/me", ctrl.UpdateMe) // ✏️ Own profile
}
