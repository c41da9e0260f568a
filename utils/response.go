package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body returned by successful write endpoints
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ErrorResponse is the body returned by every failing endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends a 200 response with a message body
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Created sends a 200 response carrying the identifier of a new record
func Created(c *gin.Context, message, id string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message, ID: id})
}

// List sends a JSON array, never null
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// RespondError renders err with the status of its AppError, or 500
func RespondError(c *gin.Context, err error) {
	if appErr := GetAppError(err); appErr != nil {
		Error(c, appErr.Code, appErr.Error())
		return
	}
	InternalServerError(c, err.Error())
}
