package controllers

import (
	"context"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"
	"github.com/gin-gonic/gin"
)

// ReviewStore is the review accessor used by ReviewController
type ReviewStore interface {
	Available() bool
	ListReviews(ctx context.Context, bookID string) ([]models.ReviewResponse, error)
	AddReview(ctx context.Context, input models.ReviewInput) (string, error)
}

// ReviewController serves the review endpoints
type ReviewController struct {
	Reviews ReviewStore
}

// NewReviewController returns a ReviewController backed by reviews
func NewReviewController(reviews ReviewStore) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GetReviews lists reviews, optionally for a single book_id
func (rc *ReviewController) GetReviews(c *gin.Context) {
	utils.LogInfo("GetReviews called")

	bookID := c.Query("book_id")
	reviews, err := rc.Reviews.ListReviews(c.Request.Context(), bookID)
	if err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.RespondError(c, err)
		return
	}

	utils.LogDebug("Found %d reviews for book ID: %q", len(reviews), bookID)
	utils.List(c, reviews)
}

// AddReview stores a review from the JSON body
func (rc *ReviewController) AddReview(c *gin.Context) {
	utils.LogInfo("AddReview called")

	if !rc.Reviews.Available() {
		utils.LogError("Review store unavailable")
		utils.RespondError(c, utils.StoreUnavailableError())
		return
	}

	var req models.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review payload: %v", err)
		utils.BadRequest(c, utils.ErrInvalidJSON)
		return
	}

	id, err := rc.Reviews.AddReview(c.Request.Context(), req)
	if err != nil {
		utils.LogError("Failed to add review: %v", err)
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Review %s added for book ID: %v", id, req.BookID)
	utils.Created(c, utils.MsgReviewAdded, id)
}
