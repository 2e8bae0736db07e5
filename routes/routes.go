package routes

import (
	"net/http"
	"time"

	"hometeam/config"
	"hometeam/handlers"
	"hometeam/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/practitioners", handlers.GetPractitionersHandler)
		api.GET("/practitioners/:id", handlers.GetPractitionerHandler)
		api.GET("/categories", handlers.GetCategoriesHandler)
	}
}

// RegisterAdminRoutes sets up the catalog-mutation endpoints. Login is
// public; everything else requires a bearer token.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", handlers.AdminLoginHandler)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.POST("/practitioners", handlers.CreatePractitionerHandler)
		adminGroup.PUT("/practitioners/:id", handlers.UpdatePractitionerHandler)
		adminGroup.DELETE("/practitioners/:id", handlers.DeletePractitionerHandler)
		adminGroup.POST("/practitioners/:id/toggle/:field", handlers.TogglePractitionerFieldHandler)
		adminGroup.POST("/categories", handlers.CreateCategoryHandler)
		adminGroup.PUT("/categories/:id", handlers.EditCategoryHandler)
		adminGroup.DELETE("/categories/:id", handlers.DeleteCategoryHandler)
		adminGroup.POST("/categories/:id/move", handlers.MoveCategoryHandler)
	}
}

// RegisterWizardRoutes sets up the onboarding wizard session endpoints.
func RegisterWizardRoutes(r *gin.Engine) {
	wizardGroup := r.Group("/api/wizard/session")
	{
		wizardGroup.POST("", handlers.OpenWizardHandler)
		wizardGroup.GET("/:id", handlers.GetWizardHandler)
		wizardGroup.POST("/:id/next", handlers.WizardNextHandler)
		wizardGroup.POST("/:id/back", handlers.WizardBackHandler)
		wizardGroup.POST("/:id/toggle-category", handlers.WizardToggleCategoryHandler)
		wizardGroup.POST("/:id/toggle-approach", handlers.WizardToggleApproachHandler)
		wizardGroup.POST("/:id/preference", handlers.WizardPreferenceHandler)
		wizardGroup.POST("/:id/budget", handlers.WizardBudgetHandler)
		wizardGroup.POST("/:id/retry", handlers.WizardRetryHandler)
		wizardGroup.DELETE("/:id", handlers.CloseWizardHandler)
	}
}

// RegisterMatchRoutes sets up the ranking endpoint with its own fixed-window
// quota on top of the global limiter. POST and OPTIONS only; every other
// verb is a 405.
func RegisterMatchRoutes(r *gin.Engine) {
	matchQuota := middleware.NewQuotaLimiter(5, time.Minute)
	r.POST("/api/match", matchQuota.Middleware(), handlers.MatchHandler)
	r.OPTIONS("/api/match", handlers.MatchOptionsHandler)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		r.Handle(method, "/api/match", handlers.MatchMethodNotAllowedHandler)
	}
}

// RegisterNotifyRoutes sets up the email-notification endpoint.
func RegisterNotifyRoutes(r *gin.Engine) {
	notifyQuota := middleware.NewQuotaLimiter(10, time.Minute)
	r.POST("/api/notify", notifyQuota.Middleware(), handlers.NotifyHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HomeTeam"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	origins := []string{"*"}
	if o := config.AppConfig.AllowedOrigin; o != "" {
		origins = []string{o}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r)
	RegisterAdminRoutes(r)
	RegisterWizardRoutes(r)
	RegisterMatchRoutes(r)
	RegisterNotifyRoutes(r)
}
