package trade

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTradeRoutes wires the trade endpoints onto the API group.
func RegisterTradeRoutes(router *gin.RouterGroup, db *gorm.DB, scorer *Scorer) {
	repo := NewTradeRepository(db)
	controller := NewTradeController(repo, scorer)

	router.POST("/analyze-trade", controller.AnalyzeTrade)
	router.GET("/trade-history", controller.GetTradeHistory)
}
