package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ffgrader/tradegrader/config"
	"github.com/ffgrader/tradegrader/internal/player"
	"github.com/ffgrader/tradegrader/internal/trade"
)

// SetupRoutes assembles the HTTP surface: health check, swagger and the /api
// group with the player directory and trade endpoints.
func SetupRoutes(db *gorm.DB, cfg *config.Config, players *player.Service, scorer *trade.Scorer) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	player.RegisterPlayerRoutes(api, players)
	trade.RegisterTradeRoutes(api, db, scorer)

	return r
}
