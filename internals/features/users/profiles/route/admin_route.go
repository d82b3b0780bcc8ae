package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/users/profiles/controller"
	featuresMiddleware "zarfuel_backend/internals/middlewares/features"
)

func ProfileAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	users := api.Group("/users", featuresMiddleware.RequireAdmin("user management"))
	users.Get("/", ctrl.GetAllUsers)            // 📄 Directory (admin)
	users.Patch("/:id/role", ctrl.ChangeRole)   // 🔁 Role change
}
