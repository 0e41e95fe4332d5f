package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffgrader/tradegrader/pkg/gemini"
)

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel) // Reduce noise in tests
	return log.WithField("component", "test")
}

func TestClient_GenerateReturnsCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-pro:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "contents")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"parts": [{"text": "SCORE: 72\n"}, {"text": "GRADE: Good"}]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	defer srv.Close()

	client := gemini.NewClient("test-key", "gemini-pro", testLogger())
	client.SetBaseURL(srv.URL)

	text, err := client.Generate(context.Background(), "analyze this trade")
	require.NoError(t, err)
	assert.Equal(t, "SCORE: 72\nGRADE: Good", text)
	assert.True(t, client.IsHealthy())
}

func TestClient_GenerateWithoutAPIKey(t *testing.T) {
	client := gemini.NewClient("", "gemini-pro", testLogger())

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, gemini.ErrNoAPIKey)
}

func TestClient_GenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	client := gemini.NewClient("test-key", "gemini-pro", testLogger())
	client.SetBaseURL(srv.URL)

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClient_GenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := gemini.NewClient("test-key", "gemini-pro", testLogger())
	client.SetBaseURL(srv.URL)

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
