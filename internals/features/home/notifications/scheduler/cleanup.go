package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"zarfuel_backend/internals/features/home/notifications/model"
)

// StartNotificationCleanupScheduler hard-deletes read notifications once
// their 24h retention window has passed. Runs hourly in bounded batches.
func StartNotificationCleanupScheduler(db *gorm.DB) {
	go func() {
		retentionHours := 24
		if val := os.Getenv("NOTIFICATION_READ_TTL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				retentionHours = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Purging expired read notifications...")

			deleteBefore := time.Now().Add(-time.Duration(retentionHours) * time.Hour)

			var expired []model.NotificationModel
			if err := db.
				Where("notification_is_read = TRUE AND notification_read_at < ?", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetch expired notifications: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] delete notifications: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired notifications removed", len(expired))
				}
			} else {
				log.Println("[CLEANUP] No notifications eligible for removal")
			}

			time.Sleep(1 * time.Hour)
		}
	}()
}
