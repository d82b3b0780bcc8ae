package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is one in-app notification for one recipient. Rows are
// written by the fan-out service and only ever mutated by marking them read.
type NotificationModel struct {
	NotificationID        uuid.UUID  `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID    uuid.UUID  `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType      string     `gorm:"column:notification_type;type:varchar(50);not null" json:"notification_type"`
	NotificationContent   string     `gorm:"column:notification_content;type:text;not null" json:"notification_content"`
	NotificationLink      *string    `gorm:"column:notification_link;type:text" json:"notification_link"`
	NotificationSourceID  *uuid.UUID `gorm:"column:notification_source_id;type:uuid" json:"notification_source_id"`
	NotificationIsRead    bool       `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationReadAt    *time.Time `gorm:"column:notification_read_at" json:"notification_read_at"`
	NotificationCreatedAt time.Time  `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
