package trade

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, gen TextGenerator) (*gin.Engine, TradeRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	scorer := NewScorer(gen, testLogger())

	r := gin.New()
	api := r.Group("/api")
	RegisterTradeRoutes(api, db, scorer)
	return r, NewTradeRepository(db)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeTrade_Success(t *testing.T) {
	gen := &fakeGenerator{text: "SCORE: 72\nGRADE: Good\nANALYSIS: Solid value add."}
	r, repo := newTestRouter(t, gen)

	w := postJSON(t, r, "/api/analyze-trade", AnalyzeTradeRequest{
		IncomingPlayers: []string{"Tyreek Hill"},
		OutgoingPlayers: []string{"Tony Pollard"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeTradeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 72, resp.Score)
	assert.Equal(t, "Good", resp.Grade)
	assert.Equal(t, "Solid value add.", resp.Analysis)
	assert.NotZero(t, resp.TradeID)

	// The analysis is persisted.
	trades, err := repo.RecentTrades(1)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, resp.TradeID, trades[0].ID)
	assert.Equal(t, 72, trades[0].Score)
}

func TestAnalyzeTrade_EmptyIncomingRejected(t *testing.T) {
	gen := &fakeGenerator{text: "SCORE: 72\nGRADE: Good\nANALYSIS: ok"}
	r, repo := newTestRouter(t, gen)

	w := postJSON(t, r, "/api/analyze-trade", map[string]interface{}{
		"incoming_players": []string{},
		"outgoing_players": []string{"Tony Pollard"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gen.calls, "validation failures must never reach the scorer")

	trades, err := repo.RecentTrades(20)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestAnalyzeTrade_MissingOutgoingRejected(t *testing.T) {
	gen := &fakeGenerator{text: "irrelevant"}
	r, _ := newTestRouter(t, gen)

	w := postJSON(t, r, "/api/analyze-trade", map[string]interface{}{
		"incoming_players": []string{"Josh Allen"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gen.calls)
}

func TestGetTradeHistory_ReturnsNewestTwenty(t *testing.T) {
	gen := &fakeGenerator{text: "SCORE: 55\nGRADE: Fair\nANALYSIS: even"}
	r, _ := newTestRouter(t, gen)

	for i := 0; i < 25; i++ {
		w := postJSON(t, r, "/api/analyze-trade", AnalyzeTradeRequest{
			IncomingPlayers: []string{"Incoming"},
			OutgoingPlayers: []string{"Outgoing"},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trade-history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TradeHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Trades, 20)
	for i := 1; i < len(resp.Trades); i++ {
		assert.Greater(t, resp.Trades[i-1].ID, resp.Trades[i].ID,
			"history must be newest first")
	}
}

func TestGetTradeHistory_EmptyIsAnEmptyList(t *testing.T) {
	r, _ := newTestRouter(t, &fakeGenerator{text: "unused"})

	req := httptest.NewRequest(http.MethodGet, "/api/trade-history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trades": []}`, w.Body.String())
}
