package router

import (
	"net/http"

	"github.com/meeple-tees/internal/config"
	"github.com/meeple-tees/internal/http/handlers"
	"github.com/meeple-tees/internal/logger"
	"github.com/meeple-tees/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/tshirts", handler.ListTShirts)
		api.POST("/orders", handler.CreateOrder)
		api.GET("/orders", handler.ListOrders)
		api.DELETE("/orders/:id", handler.DeleteOrder)
		api.POST("/reset-inventory", handler.ResetInventory)
		api.POST("/update-stock", handler.UpdateStock)
	}

	return r
}
