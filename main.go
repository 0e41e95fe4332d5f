package main

import (
	"log"

	"github.com/ffgrader/tradegrader/config"
	_ "github.com/ffgrader/tradegrader/docs"
	"github.com/ffgrader/tradegrader/internal/player"
	"github.com/ffgrader/tradegrader/internal/trade"
	"github.com/ffgrader/tradegrader/pkg/gemini"
	"github.com/ffgrader/tradegrader/pkg/logger"
	"github.com/ffgrader/tradegrader/routes"
)

// @title Fantasy Football Trade Grader API
// @version 1.0
// @description Backend for grading fantasy football trades with an AI oracle.
// @host localhost:8000
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	appLog := logger.Init(cfg.App.Env)

	if err := config.DB.AutoMigrate(&trade.Trade{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	appLog.Info("AutoMigrate successful")

	oracle := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, logger.WithComponent(appLog, "gemini"))
	scorer := trade.NewScorer(oracle, logger.WithComponent(appLog, "trade_scorer"))

	cache := player.NewCache(cfg.Players.CacheFile, logger.WithComponent(appLog, "player_cache"))
	fetcher := player.NewFetcher(cfg.Players.RankingsURL, logger.WithComponent(appLog, "player_fetcher"))
	players := player.NewService(cache, fetcher, logger.WithComponent(appLog, "player_service"))

	r := routes.SetupRoutes(config.DB, cfg, players, scorer)

	appLog.Infof("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
