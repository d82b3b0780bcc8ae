package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/forum/posts/controller"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	"zarfuel_backend/internals/realtime"
)

func ForumPostUserRoutes(api fiber.Router, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	ctrl := controller.NewForumPostController(db, fanout, hub)
	reactions := controller.NewForumPostReactionController(db, fanout, hub)

	posts := api.Group("/forum/posts")
	posts.Get("/", ctrl.GetAllPosts)       // 📄 Feed (recent | popular)
	posts.Post("/", ctrl.CreatePost)       // ➕ New post
	posts.Get("/:id", ctrl.GetPostByID)    // 🔍 Detail
	posts.Put("/:id", ctrl.UpdatePost)     // ✏️ Edit (author)
	posts.Delete("/:id", ctrl.DeletePost)  // 🗑️ Delete (author, confirmed)

	posts.Get("/:id/reactions", reactions.GetReactions)    // 🔍 Who reacted
	posts.Post("/:id/reactions", reactions.ToggleReaction) // 🔄 Like/dislike toggle
}
