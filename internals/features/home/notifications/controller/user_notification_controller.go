package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zarfuel_backend/internals/features/home/notifications/dto"
	"zarfuel_backend/internals/features/home/notifications/model"
	helper "zarfuel_backend/internals/helpers"
)

// Read notifications disappear from the feed 24h after being marked read.
const readRetention = 24 * time.Hour

type UserNotificationController struct {
	DB *gorm.DB
}

func NewUserNotificationController(db *gorm.DB) *UserNotificationController {
	return &UserNotificationController{DB: db}
}

// 🟢 GET /api/u/notifications — own feed, newest first
func (ctrl *UserNotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	cutoff := time.Now().Add(-readRetention)

	base := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Where("notification_is_read = FALSE OR notification_read_at IS NULL OR notification_read_at > ?", cutoff)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifs []model.NotificationModel
	if err := base.
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] fetch notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Notifications", dto.ToNotificationDTOList(notifs), pagination)
}

// 🟢 GET /api/u/notifications/unread-count
func (ctrl *UserNotificationController) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var count int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count unread notifications")
	}

	return helper.JsonOK(c, "Unread count", fiber.Map{"unread": count})
}

// 🟢 PATCH /api/u/notifications/:id/read
func (ctrl *UserNotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] mark notification read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonUpdated(c, "Notification marked as read", fiber.Map{"notification_id": notifID})
}

// 🟢 PATCH /api/u/notifications/read-all
func (ctrl *UserNotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] mark all notifications read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}

	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{"updated": res.RowsAffected})
}
