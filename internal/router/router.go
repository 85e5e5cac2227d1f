package router

import (
	"fmt"
	"strings"

	"github.com/rajat6235/Robusters-POS-sub001/internal/cache"
	"github.com/rajat6235/Robusters-POS-sub001/internal/config"
	poshandlers "github.com/rajat6235/Robusters-POS-sub001/internal/http/handlers/pos"
	"github.com/rajat6235/Robusters-POS-sub001/internal/logger"
	"github.com/rajat6235/Robusters-POS-sub001/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires all HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	posHandler := poshandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "pos"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		pos := apiV1.Group("/pos")
		{
			pos.POST("/auth/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), posHandler.Login)

			authorized := pos.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RBACMiddleware(c.AuthzService))
			{
				authorized.GET("/me", posHandler.Me)

				// menu
				authorized.GET("/menu/categories", posHandler.GetCategories)
				authorized.GET("/menu/items", posHandler.GetMenuItems)
				authorized.GET("/menu/items/:id", posHandler.GetMenuItem)

				// orders
				authorized.POST("/orders", posHandler.CreateOrder)
				authorized.POST("/orders/preview", posHandler.PreviewOrder)
				authorized.GET("/orders", posHandler.GetOrders)
				authorized.GET("/orders/:id", posHandler.GetOrder)
				authorized.GET("/orders/by-order-no/:order_no", posHandler.GetOrderByOrderNo)
				authorized.POST("/orders/:id/cancellation-request", posHandler.RequestCancellation)
				authorized.POST("/orders/:id/cancellation-decision", posHandler.DecideCancellation)

				// customers
				authorized.GET("/customers", posHandler.GetCustomers)
				authorized.GET("/customers/:id", posHandler.GetCustomer)

				// settings
				authorized.GET("/settings", posHandler.GetSettings)
				authorized.GET("/settings/:key", posHandler.GetSetting)
				authorized.PUT("/settings/:key", posHandler.UpdateSetting)

				// activity trail
				authorized.GET("/activity", posHandler.GetActivity)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
