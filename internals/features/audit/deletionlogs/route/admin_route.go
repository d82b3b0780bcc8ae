package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/audit/deletionlogs/controller"
	featuresMiddleware "zarfuel_backend/internals/middlewares/features"
)

func DeletionLogAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDeletionLogController(db)

	logs := api.Group("/deletion-logs", featuresMiddleware.RequireSuperAdmin("deletion logs"))
	logs.Get("/", ctrl.GetAllDeletionLogs) // 📄 Audit trail (superadmin)
}
