package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"product-registry-backend/internal/shared/middleware"
	"product-registry-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	// Service info + operational endpoints
	router.GET("/", serviceInfoHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupProductRoutes(v1, c)
	}

	return router
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.POST("", c.ProductHandler.Create)
		products.GET("", c.ProductHandler.List)
		products.GET("/:id", c.ProductHandler.GetByID)
	}
}

// ========================================
// SERVICE INFO HANDLER
// ========================================
func serviceInfoHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": appCtx.Config.App.Name,
			"version": appCtx.Config.App.Version,
			"endpoints": gin.H{
				"create": "POST /api/v1/products",
				"list":   "GET /api/v1/products",
				"detail": "GET /api/v1/products/:id",
			},
			"files": gin.H{
				"journal": appCtx.Config.JournalPath(),
				"audit":   appCtx.Config.AuditPath(),
			},
		})
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// The service is only as healthy as its storage directory.
		storageStatus := "ok"
		if info, err := os.Stat(appCtx.Config.Storage.DataDir); err != nil || !info.IsDir() {
			storageStatus = "unavailable"
			health["status"] = "degraded"
		}
		health["services"] = gin.H{
			"storage": storageStatus,
		}

		statusCode := http.StatusOK
		if storageStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
