package player

import (
	"github.com/gin-gonic/gin"
)

// RegisterPlayerRoutes wires the player directory endpoints onto the API group.
func RegisterPlayerRoutes(router *gin.RouterGroup, service *Service) {
	controller := NewPlayerController(service)

	players := router.Group("/players")
	{
		players.GET("", controller.GetAllPlayers)
		players.GET("/search", controller.SearchPlayers)
	}
}
