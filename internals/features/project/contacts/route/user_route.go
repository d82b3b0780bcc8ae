package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "zarfuel_backend/internals/features/home/notifications/service"
	"zarfuel_backend/internals/features/project/contacts/controller"
	featuresMiddleware "zarfuel_backend/internals/middlewares/features"
	"zarfuel_backend/internals/realtime"
)

func ContactUserRoutes(api fiber.Router, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	ctrl := controller.NewContactController(db, fanout, hub)

	contacts := api.Group("/contacts", featuresMiddleware.RequirePage("contacts"))
	contacts.Get("/", ctrl.GetAllContacts)      // 📄 Directory (visibility-scoped)
	contacts.Post("/", ctrl.CreateContact)      // ➕ New contact
	contacts.Put("/:id", ctrl.UpdateContact)    // ✏️ Edit
	contacts.Delete("/:id", ctrl.DeleteContact) // 🗑️ Delete (confirmed)
}
