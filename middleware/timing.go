package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"

	"github.com/gin-gonic/gin"
)

// LogWriter receives one audit record per handler invocation
type LogWriter interface {
	WriteLog(ctx context.Context, functionName string, status models.LogStatus, executionTimeMs *int, errorMessage *string)
}

// LogTimed times the handlers after it and writes exactly one audit
// record: success with the elapsed milliseconds for statuses below 400,
// error with "HTTP <status>" otherwise, or error with the panic text when
// a handler panics. Panics are re-raised for RecoveryMiddleware.
func LogTimed(sink LogWriter, functionName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := context.WithoutCancel(c.Request.Context())

		defer func() {
			if r := recover(); r != nil {
				msg := utils.Truncate(fmt.Sprint(r), models.MaxLogErrorLength)
				sink.WriteLog(ctx, functionName, models.LogStatusError, nil, &msg)
				panic(r)
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			msg := fmt.Sprintf("HTTP %d", status)
			sink.WriteLog(ctx, functionName, models.LogStatusError, nil, &msg)
			return
		}
		elapsed := int(time.Since(start).Milliseconds())
		sink.WriteLog(ctx, functionName, models.LogStatusSuccess, &elapsed, nil)
	}
}
