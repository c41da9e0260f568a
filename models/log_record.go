package models

import "time"

// LogStatus is the outcome recorded for a handler invocation
type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusError   LogStatus = "error"
)

// MaxLogErrorLength caps the error text stored with a log row
const MaxLogErrorLength = 240

// LogRecord is one append-only audit row in the logging store
type LogRecord struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Ts              *time.Time `gorm:"column:ts;type:timestamp;default:CURRENT_TIMESTAMP" json:"ts"`
	FunctionName    string     `gorm:"size:128" json:"function_name"`
	Status          LogStatus  `gorm:"type:varchar(16);not null" json:"status"`
	ExecutionTimeMs *int       `json:"execution_time_ms,omitempty"`
	ErrorMessage    *string    `gorm:"size:255" json:"error_message,omitempty"`
}

// TableName returns the audit table name
func (LogRecord) TableName() string {
	return "logs"
}

// LogSummary aggregates audit rows for a single function
type LogSummary struct {
	FunctionName   string  `json:"function_name"`
	Total          int64   `json:"total"`
	Successes      int64   `json:"successes"`
	Errors         int64   `json:"errors"`
	AvgExecutionMs float64 `json:"avg_execution_ms"`
	MaxExecutionMs int64   `json:"max_execution_ms"`
}
