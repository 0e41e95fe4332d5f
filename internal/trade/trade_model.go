package trade

import (
	"time"

	"gorm.io/datatypes"
)

// Trade is one analyzed trade. Rows are append-only: created on each
// successful analysis, never updated, never deleted.
type Trade struct {
	ID              uint                        `json:"id" gorm:"primarykey"`
	IncomingPlayers datatypes.JSONSlice[string] `json:"incoming_players" gorm:"not null"`
	OutgoingPlayers datatypes.JSONSlice[string] `json:"outgoing_players" gorm:"not null"`
	Score           int                         `json:"score" gorm:"not null"`
	Analysis        string                      `json:"analysis" gorm:"not null"`
	CreatedAt       time.Time                   `json:"created_at" gorm:"index"`
}

// Result is the outcome of scoring a single trade.
type Result struct {
	Score    int
	Grade    string
	Analysis string
}
