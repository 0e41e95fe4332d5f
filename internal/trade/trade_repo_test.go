package trade

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "trades.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Trade{}))
	return db
}

func TestTradeRepository_CreateAssignsID(t *testing.T) {
	repo := NewTradeRepository(newTestDB(t))

	trade := &Trade{
		IncomingPlayers: []string{"Tyreek Hill"},
		OutgoingPlayers: []string{"Tony Pollard"},
		Score:           72,
		Analysis:        "Solid value add.",
	}
	require.NoError(t, repo.CreateTrade(trade))
	assert.NotZero(t, trade.ID)
	assert.False(t, trade.CreatedAt.IsZero())
}

func TestTradeRepository_RecentTradesLimitAndOrder(t *testing.T) {
	repo := NewTradeRepository(newTestDB(t))

	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		trade := &Trade{
			IncomingPlayers: []string{fmt.Sprintf("In %d", i)},
			OutgoingPlayers: []string{fmt.Sprintf("Out %d", i)},
			Score:           50,
			Analysis:        "even",
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateTrade(trade))
	}

	trades, err := repo.RecentTrades(20)
	require.NoError(t, err)
	require.Len(t, trades, 20, "history is capped at the requested limit")

	assert.Equal(t, []string{"In 24"}, []string(trades[0].IncomingPlayers))
	for i := 1; i < len(trades); i++ {
		assert.False(t, trades[i].CreatedAt.After(trades[i-1].CreatedAt),
			"trades must be ordered newest first")
	}
}

func TestTradeRepository_RecentTradesEmptyTable(t *testing.T) {
	repo := NewTradeRepository(newTestDB(t))

	trades, err := repo.RecentTrades(20)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestTradeRepository_PlayerListsSurviveRoundTrip(t *testing.T) {
	repo := NewTradeRepository(newTestDB(t))

	in := []string{"Justin Jefferson", "Travis Kelce"}
	out := []string{"Davante Adams"}
	require.NoError(t, repo.CreateTrade(&Trade{
		IncomingPlayers: in,
		OutgoingPlayers: out,
		Score:           65,
		Analysis:        "favorable",
	}))

	trades, err := repo.RecentTrades(1)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, in, []string(trades[0].IncomingPlayers))
	assert.Equal(t, out, []string(trades[0].OutgoingPlayers))
}
