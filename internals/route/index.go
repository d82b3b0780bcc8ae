// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/configs"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	authService "zarfuel_backend/internals/features/users/auth/service"
	authMiddleware "zarfuel_backend/internals/middlewares/auth"
	routeDetails "zarfuel_backend/internals/route/details"
	"zarfuel_backend/internals/realtime"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	startTime = time.Now()

	api := app.Group("/api")

	// ===================== HEALTH =====================
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db)

	requireAuth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authService.IsBlacklisted(db),
		AllowCookieFallback: true,
	})

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", requireAuth)
	routeDetails.UserRoutes(user, db, fanout, hub)

	// Realtime change feed rides the same auth gate.
	log.Println("[INFO] Setting up realtime feed...")
	realtime.RegisterRoutes(user, hub)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", requireAuth)
	routeDetails.AdminRoutes(admin, db)
}
