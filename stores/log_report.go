package stores

import (
	"context"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"

	"gorm.io/gorm"
)

// SummarizeLogs aggregates the audit table per function name, ordered by
// function name. An absent table yields an empty summary.
func SummarizeLogs(ctx context.Context, open Opener) ([]models.LogSummary, error) {
	summaries := []models.LogSummary{}
	err := withDB(open, func(db *gorm.DB) error {
		db = db.WithContext(ctx)
		if !db.Migrator().HasTable(&models.LogRecord{}) {
			return nil
		}
		return db.Model(&models.LogRecord{}).
			Select(`function_name,
				COUNT(*) AS total,
				SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS successes,
				SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS errors,
				COALESCE(AVG(execution_time_ms), 0) AS avg_execution_ms,
				COALESCE(MAX(execution_time_ms), 0) AS max_execution_ms`,
				models.LogStatusSuccess, models.LogStatusError).
			Group("function_name").
			Order("function_name").
			Scan(&summaries).Error
	})
	if err != nil {
		return nil, utils.WrapError(err, "summarize logs")
	}
	return summaries, nil
}
