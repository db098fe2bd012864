package http

import (
	"github.com/cafevirtuel/backend/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Without configured proxies ClientIP is the peer address; forwarding headers are ignored.
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, ignoring forwarding headers", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerIP > 0 {
		v1.Use(RateLimitMiddleware(NewRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst, cfg.RateLimit.MaxClients)))
	}
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:family", handler.GetProduct)
			products.GET("/:family/groups/:group/options", handler.ListGroupOptions)
			products.GET("/:family/groups/:group/options/:option", handler.GetOption)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handler.OpenSession)
			sessions.GET("/:id", handler.GetSession)
			sessions.DELETE("/:id", handler.CloseSession)
			sessions.PUT("/:id/single/:group", handler.SelectSingle)
			sessions.PUT("/:id/multiple/:group", handler.ToggleMultiple)
			sessions.GET("/:id/price", handler.GetPrice)
			sessions.GET("/:id/scene", handler.GetScene)
		}
	}

	return router
}
