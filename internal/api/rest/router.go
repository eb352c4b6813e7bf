package rest

import (
	"net/http"

	"currency-transactions/internal/logger"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру
func SetupCommonEndpoints(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/v1/events", func(c *gin.Context) {
		events := logger.GetEvents(parseLimit(c))
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	router.GET("/api/v1/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, logger.GetStats())
	})
}

// RegisterRoutes регистрирует маршруты API сервиса отчётов
func RegisterRoutes(router *gin.Engine, handlers *Handlers) {
	api := router.Group("/api/v1")
	{
		api.POST("/runs", handlers.TriggerRun)
		api.GET("/runs", handlers.GetRuns)
		api.GET("/runs/:run_id", handlers.GetRun)
		api.GET("/runs/:run_id/events", handlers.GetRunEvents)
		api.GET("/transactions", handlers.GetTransactions)
		api.DELETE("/transactions", handlers.ClearAllTransactions)
		api.GET("/sample", handlers.GenerateSample)
	}

	SetupCommonEndpoints(router)
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	RegisterRoutes(router, handlers)
	return router
}
