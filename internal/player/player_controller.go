package player

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ffgrader/tradegrader/pkg/responses"
)

// PlayerController handles API requests for the player directory.
type PlayerController struct {
	service *Service
}

func NewPlayerController(service *Service) *PlayerController {
	return &PlayerController{service: service}
}

// GetAllPlayers godoc
// @Summary Get all players
// @Description Returns the full player directory, refreshing it from the rankings source when needed
// @Tags Players
// @Produce json
// @Success 200 {array} Player
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players := pc.service.GetPlayers(c.Request.Context())
	c.JSON(http.StatusOK, players)
}

// SearchPlayers godoc
// @Summary Search players
// @Description Case-insensitive substring search over player name, team and position
// @Tags Players
// @Produce json
// @Param q query string true "Search query" minlength(1)
// @Success 200 {array} Player
// @Failure 400 {object} responses.ErrorResponse "Missing query parameter"
// @Router /players/search [get]
func (pc *PlayerController) SearchPlayers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		responses.SendError(c, http.StatusBadRequest, "Query parameter 'q' is required", nil)
		return
	}

	// Ensure the directory is populated before searching.
	pc.service.GetPlayers(c.Request.Context())
	c.JSON(http.StatusOK, pc.service.Search(query))
}
