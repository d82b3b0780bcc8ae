package dto

import (
	"time"

	"github.com/google/uuid"

	"zarfuel_backend/internals/features/home/notifications/model"
)

// ================== RESPONSE ==================
type NotificationDTO struct {
	NotificationID        uuid.UUID  `json:"notification_id"`
	NotificationType      string     `json:"notification_type"`
	NotificationContent   string     `json:"notification_content"`
	NotificationLink      *string    `json:"notification_link"`
	NotificationSourceID  *uuid.UUID `json:"notification_source_id"`
	NotificationIsRead    bool       `json:"notification_is_read"`
	NotificationCreatedAt time.Time  `json:"notification_created_at"`
}

// ================ CONVERSION =================
func ToNotificationDTO(m model.NotificationModel) NotificationDTO {
	return NotificationDTO{
		NotificationID:        m.NotificationID,
		NotificationType:      m.NotificationType,
		NotificationContent:   m.NotificationContent,
		NotificationLink:      m.NotificationLink,
		NotificationSourceID:  m.NotificationSourceID,
		NotificationIsRead:    m.NotificationIsRead,
		NotificationCreatedAt: m.NotificationCreatedAt,
	}
}

func ToNotificationDTOList(models []model.NotificationModel) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToNotificationDTO(m))
	}
	return out
}
