package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/forum/comments/controller"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	"zarfuel_backend/internals/realtime"
)

func ForumCommentUserRoutes(api fiber.Router, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	ctrl := controller.NewForumCommentController(db, fanout, hub)
	reactions := controller.NewForumCommentReactionController(db, fanout, hub)

	// Nested under the owning post
	postComments := api.Group("/forum/posts/:post_id/comments")
	postComments.Get("/", ctrl.GetThreadsByPost) // 📄 Two-level threads
	postComments.Post("/", ctrl.CreateComment)   // ➕ Comment or reply

	// Addressed directly once created
	comments := api.Group("/forum/comments")
	comments.Put("/:id", ctrl.UpdateComment)              // ✏️ Edit (author)
	comments.Delete("/:id", ctrl.DeleteComment)           // 🗑️ Delete (author, confirmed)
	comments.Post("/:id/reactions", reactions.ToggleReaction) // 🔄 Like/dislike toggle
}
