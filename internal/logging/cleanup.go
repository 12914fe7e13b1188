package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/gavtech/classement-backend/internal/models"
)

// RetentionDays is how long system_logs rows are kept.
const RetentionDays = 30

// StartCleanup runs a daily goroutine that deletes system_logs rows
// older than the retention window.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -RetentionDays)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
