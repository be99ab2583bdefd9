package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/config"
	"github.com/the88gb/influencer-dashboard-backend/internal/handlers"
	"github.com/the88gb/influencer-dashboard-backend/internal/middleware"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

// SetupRouter configures the Gin router with the dashboard API routes
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create handlers
	brandHandler := handlers.NewBrandHandler(db)
	campaignHandler := handlers.NewCampaignHandler(db)
	influencerRowHandler := handlers.NewCampaignInfluencerHandler(db)
	influencerHandler := handlers.NewInfluencerHandler(db)
	analyticsHandler := handlers.NewCampaignAnalyticsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	searchHandler := handlers.NewSearchHandler(db)
	excelHandler := handlers.NewExcelHandler(db)
	diagnosticHandler := handlers.NewDiagnosticHandler(db, cfg)

	metricsService := services.NewMetricsService(cfg.MetricsWebhookURL, cfg.MetricsWebhookTimeout)
	webhookHandler := handlers.NewWebhookHandler(metricsService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Diagnostic probe
	r.GET("/test", diagnosticHandler.Test)

	// Brand routes
	brands := r.Group("/brands")
	{
		brands.GET("", brandHandler.GetBrands)
		brands.POST("", brandHandler.CreateBrand)
		brands.GET("/campaign-counts", brandHandler.GetCampaignCounts)
		brands.GET("/:id", brandHandler.GetBrandByID)
		brands.PUT("/:id", brandHandler.UpdateBrand)
		brands.DELETE("/:id", brandHandler.DeleteBrand)
	}

	// Campaign routes
	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("", campaignHandler.GetCampaigns)
		campaigns.POST("", campaignHandler.CreateCampaign)
		campaigns.GET("/influencer-counts", campaignHandler.GetInfluencerCounts)
		campaigns.GET("/:id", campaignHandler.GetCampaignByID)
		campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
		campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
		campaigns.GET("/:id/stats", campaignHandler.GetCampaignStats)
		campaigns.GET("/:id/influencers", influencerRowHandler.GetByCampaign)
		campaigns.POST("/:id/influencers", influencerRowHandler.Create)
		campaigns.PUT("/:id/influencers", influencerRowHandler.Update)
		campaigns.DELETE("/:id/influencers", influencerRowHandler.Delete)
		campaigns.GET("/:id/analytics", analyticsHandler.GetByCampaign)
		campaigns.PUT("/:id/analytics", analyticsHandler.Upsert)
	}

	// Influencer routes
	r.GET("/influencers", influencerHandler.GetInfluencers)

	// Dashboard routes
	r.GET("/dashboard/stats", dashboardHandler.GetStats)

	// Search
	r.GET("/search", searchHandler.Search)

	// Excel export
	r.GET("/export/campaigns", excelHandler.ExportCampaigns)

	// Metrics webhook proxy
	r.POST("/webhook/fetch-post-metrics", webhookHandler.FetchPostMetrics)

	return r
}
