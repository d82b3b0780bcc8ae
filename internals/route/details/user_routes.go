package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "zarfuel_backend/internals/features/calendar/events/route"
	commentRoute "zarfuel_backend/internals/features/forum/comments/route"
	postRoute "zarfuel_backend/internals/features/forum/posts/route"
	notifRoute "zarfuel_backend/internals/features/home/notifications/route"
	notifService "zarfuel_backend/internals/features/home/notifications/service"
	contactRoute "zarfuel_backend/internals/features/project/contacts/route"
	taskRoute "zarfuel_backend/internals/features/project/tasks/route"
	authRoute "zarfuel_backend/internals/features/users/auth/route"
	profileRoute "zarfuel_backend/internals/features/users/profiles/route"
	"zarfuel_backend/internals/realtime"
)

// UserRoutes mounts everything behind /api/u (any authenticated role; the
// feature routes add their own role gates where needed).
func UserRoutes(api fiber.Router, db *gorm.DB, fanout *notifService.FanoutService, hub *realtime.Hub) {
	authRoute.AuthUserRoutes(api, db)
	profileRoute.ProfileUserRoutes(api, db)
	notifRoute.NotificationUserRoutes(api, db)

	postRoute.ForumPostUserRoutes(api, db, fanout, hub)
	commentRoute.ForumCommentUserRoutes(api, db, fanout, hub)

	eventRoute.EventUserRoutes(api, db, fanout, hub)
	taskRoute.TaskUserRoutes(api, db, fanout, hub)
	contactRoute.ContactUserRoutes(api, db, fanout, hub)
}
