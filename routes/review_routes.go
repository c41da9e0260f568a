package routes

import (
	"github.com/Govind-619/BookNook/controllers"
	"github.com/Govind-619/BookNook/middleware"
	"github.com/gin-gonic/gin"
)

// initReviewRoutes registers the review endpoints
func initReviewRoutes(router *gin.RouterGroup, reviews *controllers.ReviewController, sink middleware.LogWriter) {
	router.GET("/reviews", middleware.LogTimed(sink, "GetReviews"), reviews.GetReviews)
	router.POST("/add_review", middleware.LogTimed(sink, "AddReview"), reviews.AddReview)
}
