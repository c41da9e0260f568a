package routes

import (
	"net/http"
	"os"

	"github.com/Govind-619/BookNook/controllers"
	"github.com/Govind-619/BookNook/middleware"
	"github.com/Govind-619/BookNook/static"
	"github.com/Govind-619/BookNook/templates"
	"github.com/Govind-619/BookNook/utils"
	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Books     controllers.BookStore
	Reviews   controllers.ReviewStore
	LogSink   middleware.LogWriter
	StaticDir string
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// STATIC_DIR overrides the embedded assets, handy while editing them
	if info, err := os.Stat(deps.StaticDir); deps.StaticDir != "" && err == nil && info.IsDir() {
		router.Static("/static", deps.StaticDir)
	} else {
		if deps.StaticDir != "" {
			utils.LogDebug("Static directory %s not found, serving embedded assets", deps.StaticDir)
		}
		router.StaticFS("/static", http.FS(static.Files))
	}

	router.GET("/", controllers.Index)

	api := router.Group("/api")
	{
		initBookRoutes(api, controllers.NewBookController(deps.Books), deps.LogSink)
		initReviewRoutes(api, controllers.NewReviewController(deps.Reviews), deps.LogSink)
	}

	return router, nil
}
