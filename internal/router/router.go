package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"incorply/internal/middleware"
	"incorply/internal/order"
	"incorply/internal/recommend"
)

// NewRouter wires the full HTTP surface of the wizard backend.
func NewRouter(
	orderHandler *order.Handler,
	recHandler *recommend.Handler,
	orderService *order.Service,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Static configuration for the wizard UI
	r.GET("/catalog", func(c *gin.Context) {
		c.JSON(200, orderService.Catalog())
	})

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.GET("/:id/items", orderHandler.GetItems)
		orders.POST("/:id/checkout", orderHandler.Checkout)
	}

	// ───────────────────────── RECOMMENDATION ROUTES ─────────────────────────
	recs := r.Group("/orders/:id")
	recs.Use(middleware.ActionGuard())
	{
		recs.POST("/recommendations/incorporation", recHandler.RecommendIncorporation)
		recs.POST("/recommendations/addons", recHandler.RecommendAddons)
		recs.POST("/recommendations/intro", recHandler.GenerateIntro)
		recs.POST("/prefill", recHandler.PrefillCompanyDetails)
	}

	return r
}
