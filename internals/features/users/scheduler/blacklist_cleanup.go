package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"helix_backend/internals/features/users/model"
)

// StartBlacklistCleanupScheduler deletes long-expired blacklist rows once a
// day so the table the auth middleware scans stays small.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetch expired tokens: %v", err)
			} else if len(expired) > 0 {
				if err := db.Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] delete tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] removed %d expired blacklist tokens", len(expired))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
