package stores

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Govind-619/BookNook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqliteOpener(path string) Opener {
	return func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	}
}

func readLogs(t *testing.T, open Opener) []models.LogRecord {
	t.Helper()
	var records []models.LogRecord
	require.NoError(t, withDB(open, func(db *gorm.DB) error {
		return db.Order("id").Find(&records).Error
	}))
	return records
}

func TestWriteLogCreatesTableAndInserts(t *testing.T) {
	open := sqliteOpener(filepath.Join(t.TempDir(), "logs.db"))
	sink := NewLogSink(open)

	elapsed := 12
	sink.WriteLog(context.Background(), "GetBooks", models.LogStatusSuccess, &elapsed, nil)
	msg := "HTTP 400"
	sink.WriteLog(context.Background(), "AddBook", models.LogStatusError, nil, &msg)

	records := readLogs(t, open)
	require.Len(t, records, 2)

	assert.Equal(t, "GetBooks", records[0].FunctionName)
	assert.Equal(t, models.LogStatusSuccess, records[0].Status)
	require.NotNil(t, records[0].ExecutionTimeMs)
	assert.Equal(t, 12, *records[0].ExecutionTimeMs)
	assert.Nil(t, records[0].ErrorMessage)
	assert.NotNil(t, records[0].Ts)

	assert.Equal(t, "AddBook", records[1].FunctionName)
	assert.Equal(t, models.LogStatusError, records[1].Status)
	assert.Nil(t, records[1].ExecutionTimeMs)
	require.NotNil(t, records[1].ErrorMessage)
	assert.Equal(t, "HTTP 400", *records[1].ErrorMessage)
}

func TestCreateLogTableWhenAlreadyCreated(t *testing.T) {
	open := sqliteOpener(filepath.Join(t.TempDir(), "logs.db"))

	require.NoError(t, withDB(open, func(db *gorm.DB) error {
		require.NoError(t, db.Migrator().CreateTable(&models.LogRecord{}))
		// a second writer that checked HasTable before the first one created it
		return createLogTable(db)
	}))

	sink := NewLogSink(open)
	elapsed := 3
	sink.WriteLog(context.Background(), "GetBooks", models.LogStatusSuccess, &elapsed, nil)
	assert.Len(t, readLogs(t, open), 1)
}

func TestWriteLogSwallowsFailures(t *testing.T) {
	calls := 0
	sink := NewLogSink(func() (*gorm.DB, error) {
		calls++
		return nil, errors.New("connection refused")
	})

	assert.NotPanics(t, func() {
		sink.WriteLog(context.Background(), "GetBooks", models.LogStatusSuccess, nil, nil)
	})
	assert.Equal(t, 1, calls)

	var nilSink *LogSink
	assert.NotPanics(t, func() {
		nilSink.WriteLog(context.Background(), "GetBooks", models.LogStatusSuccess, nil, nil)
	})

	panicking := NewLogSink(func() (*gorm.DB, error) {
		panic("driver bug")
	})
	assert.NotPanics(t, func() {
		panicking.WriteLog(context.Background(), "GetBooks", models.LogStatusSuccess, nil, nil)
	})
}

func TestSummarizeLogs(t *testing.T) {
	open := sqliteOpener(filepath.Join(t.TempDir(), "logs.db"))

	empty, err := SummarizeLogs(context.Background(), open)
	require.NoError(t, err)
	assert.Empty(t, empty)

	sink := NewLogSink(open)
	for _, ms := range []int{10, 30} {
		ms := ms
		sink.WriteLog(context.Background(), "GetBooks", models.LogStatusSuccess, &ms, nil)
	}
	msg := "HTTP 500"
	sink.WriteLog(context.Background(), "GetReviews", models.LogStatusError, nil, &msg)

	summaries, err := SummarizeLogs(context.Background(), open)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "GetBooks", summaries[0].FunctionName)
	assert.EqualValues(t, 2, summaries[0].Total)
	assert.EqualValues(t, 2, summaries[0].Successes)
	assert.EqualValues(t, 0, summaries[0].Errors)
	assert.InDelta(t, 20.0, summaries[0].AvgExecutionMs, 0.001)
	assert.EqualValues(t, 30, summaries[0].MaxExecutionMs)

	assert.Equal(t, "GetReviews", summaries[1].FunctionName)
	assert.EqualValues(t, 1, summaries[1].Errors)
	assert.EqualValues(t, 0, summaries[1].AvgExecutionMs)
}
