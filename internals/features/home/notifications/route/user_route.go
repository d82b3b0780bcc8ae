package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserNotificationController(db)

	notifs := api.Group("/notifications")
	notifs.Get("/", ctrl.GetMyNotifications)          // 📄 Own feed
	notifs.Get("/unread-count", ctrl.GetUnreadCount)  // 🔢 Badge counter
	notifs.Patch("/read-all", ctrl.MarkAllAsRead)     // ✅ Mark everything read
	notifs.Patch("/:id/read", ctrl.MarkAsRead)        // ✅ Mark one read
}
