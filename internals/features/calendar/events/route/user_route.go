package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/calendar/events/controller"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	featuresMiddleware "zarfuel_backend/internals/middlewares/features"
	"zarfuel_backend/internals/realtime"
)

func EventUserRoutes(api fiber.Router, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	ctrl := controller.NewEventController(db, fanout, hub)

	events := api.Group("/calendar/events")
	events.Get("/", ctrl.GetAllEvents)                 // 📄 Calendar range (any role)
	events.Get("/:id", ctrl.GetEventByID)              // 🔍 Detail
	events.Patch("/:id/respond", ctrl.RespondToEvent)  // ✅ Accept/decline own invite

	// Organizing meetings is gated to special and above.
	requireSpecial := featuresMiddleware.RequireSpecial("meetings")
	events.Post("/", requireSpecial, ctrl.CreateEvent)      // ➕ Schedule
	events.Put("/:id", requireSpecial, ctrl.UpdateEvent)    // ✏️ Reschedule / reinvite
	events.Delete("/:id", requireSpecial, ctrl.DeleteEvent) // 🗑️ Cancel (confirmed)
}
