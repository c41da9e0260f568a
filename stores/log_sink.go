package stores

import (
	"context"
	"fmt"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"

	"gorm.io/gorm"
)

// LogSink writes audit rows to the logging store. It never reports
// failures to its caller.
type LogSink struct {
	open Opener
}

// NewLogSink returns a LogSink opening a fresh connection per write
func NewLogSink(open Opener) *LogSink {
	return &LogSink{open: open}
}

// WriteLog records one handler invocation. executionTimeMs is only set on
// success and errorMessage only on error.
func (s *LogSink) WriteLog(ctx context.Context, functionName string, status models.LogStatus, executionTimeMs *int, errorMessage *string) {
	defer func() {
		if r := recover(); r != nil {
			utils.LogError("write_log for %s panicked: %v", functionName, r)
		}
	}()

	if s == nil || s.open == nil {
		utils.LogError("write_log for %s skipped: logging store not configured", functionName)
		return
	}

	record := models.LogRecord{
		FunctionName:    functionName,
		Status:          status,
		ExecutionTimeMs: executionTimeMs,
		ErrorMessage:    errorMessage,
	}
	err := withDB(s.open, func(db *gorm.DB) error {
		db = db.WithContext(ctx)
		if err := ensureLogTable(db); err != nil {
			return err
		}
		return db.Create(&record).Error
	})
	if err != nil {
		utils.LogError("write_log for %s failed: %v", functionName, err)
	}
}

func ensureLogTable(db *gorm.DB) error {
	if db.Migrator().HasTable(&models.LogRecord{}) {
		return nil
	}
	return createLogTable(db)
}

// createLogTable tolerates losing a race with another writer creating the
// same table.
func createLogTable(db *gorm.DB) error {
	err := db.Migrator().CreateTable(&models.LogRecord{})
	if err == nil || db.Migrator().HasTable(&models.LogRecord{}) {
		return nil
	}
	return fmt.Errorf("create logs table: %w", err)
}
