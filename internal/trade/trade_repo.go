package trade

import (
	"gorm.io/gorm"
)

type TradeRepository interface {
	CreateTrade(trade *Trade) error
	RecentTrades(limit int) ([]Trade, error)
}

type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new instance of TradeRepository.
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) CreateTrade(trade *Trade) error {
	return r.db.Create(trade).Error
}

// RecentTrades returns the most recent trades, newest first. The id tiebreak
// keeps the order stable when several trades share a creation timestamp.
func (r *tradeRepository) RecentTrades(limit int) ([]Trade, error) {
	var trades []Trade
	err := r.db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}
