package routes

import (
	"github.com/Govind-619/BookNook/controllers"
	"github.com/Govind-619/BookNook/middleware"
	"github.com/gin-gonic/gin"
)

// initBookRoutes registers the catalog endpoints
func initBookRoutes(router *gin.RouterGroup, books *controllers.BookController, sink middleware.LogWriter) {
	router.GET("/books", middleware.LogTimed(sink, "GetBooks"), books.GetBooks)
	router.POST("/add_book", middleware.LogTimed(sink, "AddBook"), books.AddBook)
	router.GET("/search", middleware.LogTimed(sink, "SearchBooks"), books.SearchBooks)
}
