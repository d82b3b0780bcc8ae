package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/users/auth/controller"
	"zarfuel_backend/internals/middlewares"
)

// AuthPublicRoutes mounts the unauthenticated entry points.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register) // ➕ New account
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)          // 🔑 Sign in
}

// AuthUserRoutes mounts the endpoints that need a live token.
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/logout", ctrl.Logout) // 🚪 Revoke token
}
