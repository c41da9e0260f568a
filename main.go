package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Govind-619/BookNook/config"
	"github.com/Govind-619/BookNook/routes"
	"github.com/Govind-619/BookNook/stores"
	"github.com/Govind-619/BookNook/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	// Initialize logger
	if err := utils.InitLogger(cfg.LogDir); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Catalog store
	if err := config.InitCatalog(cfg.CatalogDBPath); err != nil {
		utils.LogError("Failed to initialize catalog: %v", err)
		log.Fatal("Failed to initialize catalog:", err)
	}
	books, err := stores.NewCatalogStore(config.CatalogOpener(cfg.CatalogDBPath))
	if err != nil {
		log.Fatal("Failed to create catalog store:", err)
	}

	// Review store; the API keeps running without it and reports 500s
	reviewOpts := stores.ReviewStoreOptions{
		Database:   cfg.MongoDB,
		Collection: cfg.MongoReviewsCollection,
	}
	mongoClient, err := config.ConnectMongo(context.Background(), cfg)
	if err != nil {
		utils.LogError("MongoDB connection failed: %v", err)
	} else {
		reviewOpts.Client = mongoClient
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoClient.Disconnect(ctx); err != nil {
				utils.LogError("Failed to disconnect MongoDB: %v", err)
			}
		}()
	}

	router, err := routes.SetupRouter(routes.Dependencies{
		Books:     books,
		Reviews:   stores.NewReviewStore(reviewOpts),
		LogSink:   stores.NewLogSink(config.LogDBOpener(cfg)),
		StaticDir: cfg.StaticDir,
	})
	if err != nil {
		utils.LogError("Failed to set up router: %v", err)
		log.Fatal("Failed to set up router:", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.LogInfo("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError("Server forced to shutdown: %v", err)
	}
}
