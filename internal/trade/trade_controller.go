package trade

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ffgrader/tradegrader/pkg/responses"
	"github.com/ffgrader/tradegrader/pkg/validator"
)

// historyLimit caps how many trades the history endpoint returns.
const historyLimit = 20

// TradeController handles API requests for trade analysis and history.
type TradeController struct {
	repo   TradeRepository
	scorer *Scorer
}

func NewTradeController(repo TradeRepository, scorer *Scorer) *TradeController {
	return &TradeController{repo: repo, scorer: scorer}
}

// --- DTOs ---

type AnalyzeTradeRequest struct {
	IncomingPlayers []string `json:"incoming_players" binding:"required,min=1"`
	OutgoingPlayers []string `json:"outgoing_players" binding:"required,min=1"`
}

type AnalyzeTradeResponse struct {
	Score    int    `json:"score"`
	Grade    string `json:"grade"`
	Analysis string `json:"analysis"`
	TradeID  uint   `json:"trade_id"`
}

type TradeHistoryResponse struct {
	Trades []Trade `json:"trades"`
}

// AnalyzeTrade godoc
// @Summary Analyze a fantasy football trade
// @Description Scores the trade with the AI oracle (or a mock fallback) and records the result
// @Tags Trades
// @Accept json
// @Produce json
// @Param trade body AnalyzeTradeRequest true "Players received and given up"
// @Success 200 {object} AnalyzeTradeResponse
// @Failure 400 {object} responses.ErrorResponse "Empty player lists or malformed body"
// @Failure 500 {object} responses.ErrorResponse "Failed to record the trade"
// @Router /analyze-trade [post]
func (tc *TradeController) AnalyzeTrade(c *gin.Context) {
	var req AnalyzeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errs := validator.ParseError(err)
		responses.SendError(c, http.StatusBadRequest, "Must specify both incoming and outgoing players", errs)
		return
	}

	result := tc.scorer.Analyze(c.Request.Context(), req.IncomingPlayers, req.OutgoingPlayers)

	record := Trade{
		IncomingPlayers: req.IncomingPlayers,
		OutgoingPlayers: req.OutgoingPlayers,
		Score:           result.Score,
		Analysis:        result.Analysis,
	}
	if err := tc.repo.CreateTrade(&record); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to save trade", err.Error())
		return
	}

	c.JSON(http.StatusOK, AnalyzeTradeResponse{
		Score:    result.Score,
		Grade:    result.Grade,
		Analysis: result.Analysis,
		TradeID:  record.ID,
	})
}

// GetTradeHistory godoc
// @Summary Get recent trade analyses
// @Description Returns the 20 most recent analyzed trades, newest first
// @Tags Trades
// @Produce json
// @Success 200 {object} TradeHistoryResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /trade-history [get]
func (tc *TradeController) GetTradeHistory(c *gin.Context) {
	trades, err := tc.repo.RecentTrades(historyLimit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve trade history", err.Error())
		return
	}
	if trades == nil {
		trades = []Trade{}
	}

	c.JSON(http.StatusOK, TradeHistoryResponse{Trades: trades})
}
