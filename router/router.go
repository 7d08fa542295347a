package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AutoNateAI/insta-matrix-insights-flow/cart"
	"github.com/AutoNateAI/insta-matrix-insights-flow/handler"
	"github.com/AutoNateAI/insta-matrix-insights-flow/middleware"
	"github.com/AutoNateAI/insta-matrix-insights-flow/store"
)

func Setup(dataStore *store.DataStore, selection *cart.Cart, publisher *handler.EventPublisher) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(middleware.PrometheusMiddleware("insights-service"))

	insights := handler.NewInsightsHandler(dataStore, publisher)
	cartHandler := handler.NewCartHandler(selection)

	api := r.Group("/api/v1")
	{
		api.POST("/data", insights.LoadData)
		api.DELETE("/data", insights.ClearData)
		api.GET("/status", insights.GetStatus)
		api.GET("/posts", insights.GetPosts)
		api.GET("/summary", insights.GetSummary)
		api.GET("/timing", insights.GetTiming)
		api.GET("/content", insights.GetContent)
		api.GET("/content/keywords/top", insights.GetTopKeywords)
		api.GET("/hashtags", insights.GetHashtags)
		api.GET("/network", insights.GetNetwork)
		api.GET("/engagement", insights.GetEngagement)
		api.GET("/engagement/summary", insights.GetEngagementSummary)
		api.GET("/export", insights.ExportReport)
		api.POST("/export/partial", insights.ExportPartial)

		api.GET("/cart", cartHandler.GetItems)
		api.POST("/cart", cartHandler.AddItem)
		api.DELETE("/cart", cartHandler.ClearCart)
		api.DELETE("/cart/:type/:id", cartHandler.RemoveItem)
		api.GET("/cart/contains", cartHandler.ContainsItem)
	}

	// Health check endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "insights-service"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "insights-service"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
