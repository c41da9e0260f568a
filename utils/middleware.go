package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "RequestID"

// RequestIDHeader carries the request ID in and out
const RequestIDHeader = "X-Request-ID"

// loggedFilters are the query parameters the API reads
var loggedFilters = []string{"q", "book_id"}

// LoggerMiddleware logs one line per request. Static asset hits go to the
// debug log only.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		line := fmt.Sprintf("[%s] %s %s from %s - Status: %d - Duration: %v",
			c.GetString(RequestIDKey), c.Request.Method, path, c.ClientIP(), c.Writer.Status(), time.Since(start))
		if filters := RequestFilters(c.Request.URL.Query()); filters != "" {
			line += " - Filters: " + filters
		}

		if strings.HasPrefix(path, "/static/") {
			LogDebug("%s", line)
			return
		}
		LogInfo("%s", line)
	}
}

// RequestFilters renders the search and review filters of a query, ignoring
// parameters the API does not read
func RequestFilters(query url.Values) string {
	var parts []string
	for _, key := range loggedFilters {
		if v := query.Get(key); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", key, v))
		}
	}
	return strings.Join(parts, " ")
}

// CORSMiddleware allows the single page front end to be served elsewhere
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RecoveryMiddleware turns a panic into the generic 500 body
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				LogErrorWithStack(fmt.Errorf("request %s: %v", c.GetString(RequestIDKey), err), debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// RequestIDMiddleware reuses a caller supplied UUID or mints a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers. Book covers are remote
// URLs so images may load from anywhere.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Content-Security-Policy", "default-src 'self'; img-src * data:")
		c.Next()
	}
}
