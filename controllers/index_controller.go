package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index renders the single page front end
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}
