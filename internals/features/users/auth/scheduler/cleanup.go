package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"zarfuel_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler reaps blacklist rows whose tokens have been
// expired for longer than the grace TTL. Runs daily in bounded batches.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		graceDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				graceDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Sweeping token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(graceDays) * 24 * time.Hour)

			var expired []model.TokenBlacklist
			if err := db.
				Where("token_blacklist_expired_at < ?", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetch expired tokens: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] delete expired tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired tokens removed", len(expired))
				}
			} else {
				log.Println("[CLEANUP] Nothing to remove")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
