// File: hometeam/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hometeam/config"
	"hometeam/database"
	categoryRepo "hometeam/database/repository/category"
	practitionerRepo "hometeam/database/repository/practitioner"
	"hometeam/handlers"
	"hometeam/routes"
	"hometeam/services/catalog"
	"hometeam/services/matching"
	"hometeam/services/notification"
	"hometeam/services/wizard"
	"hometeam/utils"

	"github.com/gin-gonic/gin"
	"github.com/resend/resend-go/v2"
)

const wizardSessionTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	remoteUp := database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Catalog: remote repositories only when Mongo is reachable, the redis
	// cache tier and seeded defaults otherwise.
	catalogService := &catalog.DefaultCatalogService{
		Cache: catalog.NewRedisCache(utils.GetCacheClient()),
	}
	if remoteUp {
		catalogService.PractitionerRepo = practitionerRepo.NewMongoPractitionerRepo()
		catalogService.CategoryRepo = categoryRepo.NewMongoCategoryRepo()
	} else {
		logger.Warn("main: remote store unreachable, catalog runs cache-backed")
	}
	catalogService.Load()

	// Matching: degrade to a clear not-configured error without an API key.
	matchingService := &matching.DefaultMatchingService{}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		ranker, err := matching.NewGeminiRanker(context.Background(), key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize ranking client: %v", err)
		}
		defer ranker.Close()
		matchingService.Ranker = ranker
	} else {
		logger.Warn("main: no ranking-model API key, matching endpoint disabled")
	}

	wizardService := &wizard.DefaultWizardService{
		Store:       wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), wizardSessionTTL),
		MatchClient: &matching.DefaultMatchClient{Matcher: matchingService},
		Catalog:     catalogService,
	}

	// Notification: nil client degrades sends to a silent no-op.
	notificationService := &notification.DefaultNotificationService{
		From: config.AppConfig.EmailFrom,
	}
	if key := config.AppConfig.ResendAPIKey; key != "" {
		notificationService.Client = resend.NewClient(key)
	} else {
		logger.Warn("main: no email API key, notifications run as no-ops")
	}

	handlers.CatalogService = catalogService
	handlers.WizardService = wizardService
	handlers.MatchService = matchingService
	handlers.NotificationService = notificationService

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
