package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "zarfuel_backend/internals/features/home/notifications/service"
	"zarfuel_backend/internals/features/project/tasks/controller"
	featuresMiddleware "zarfuel_backend/internals/middlewares/features"
	"zarfuel_backend/internals/realtime"
)

func TaskUserRoutes(api fiber.Router, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	ctrl := controller.NewTaskController(db, fanout, hub)

	tasks := api.Group("/tasks", featuresMiddleware.RequirePage("tasks"))
	tasks.Get("/", ctrl.GetAllTasks)      // 📄 Board
	tasks.Post("/", ctrl.CreateTask)      // ➕ New task
	tasks.Get("/:id", ctrl.GetTaskByID)   // 🔍 Detail
	tasks.Put("/:id", ctrl.UpdateTask)    // ✏️ Edit / reprioritize
	tasks.Delete("/:id", ctrl.DeleteTask) // 🗑️ Delete (confirmed)
}
