package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "jebshit_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanup prunes expired blacklist rows hourly so the table does
// not grow unbounded. Expired tokens fail JWT validation anyway.
func StartBlacklistCleanup(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Unscoped().
				Where("token_blacklist_expires_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[WARN] blacklist cleanup: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup: removed %d expired tokens", res.RowsAffected)
			}
		}
	}()
}
