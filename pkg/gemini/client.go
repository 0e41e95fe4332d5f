package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoAPIKey is returned when the client was constructed without credentials.
// Callers treat it like any other generation failure and fall back locally.
var ErrNoAPIKey = errors.New("gemini: API key not configured")

// Client talks to the Google Generative Language API.
type Client struct {
	httpClient *http.Client
	logger     *logrus.Entry
	apiKey     string
	baseURL    string
	model      string
	breaker    *gobreaker.CircuitBreaker
}

// generateRequest is the request payload for the generateContent endpoint.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the API response we consume.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient creates a Gemini API client. The circuit breaker keeps a flaky or
// rate-limited upstream from being hammered while callers degrade to their
// local fallback.
func NewClient(apiKey, model string, logger *logrus.Entry) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Info("Gemini API circuit breaker state changed")
		},
	})

	if model == "" {
		model = "gemini-pro"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // Allow longer timeout for AI processing
		},
		logger:  logger,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   model,
		breaker: cb,
	}
}

// Generate sends a single-turn prompt and returns the concatenated text of the
// first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.generateContent(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return result.(string), nil
}

func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err != nil || ae.Error.Message == "" {
			return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
		}
		c.logger.WithFields(logrus.Fields{
			"status":     resp.StatusCode,
			"api_status": ae.Error.Status,
		}).Warn("Gemini API returned an error")
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, ae.Error.Message)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 {
		return "", errors.New("response contained no candidates")
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if text == "" {
		return "", errors.New("response candidate contained no text")
	}

	c.logger.WithFields(logrus.Fields{
		"model":         c.model,
		"finish_reason": gr.Candidates[0].FinishReason,
		"text_length":   len(text),
	}).Debug("Gemini API call succeeded")

	return text, nil
}

// SetBaseURL overrides the API endpoint. Used by tests to point the client at
// a local server.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// IsHealthy reports whether the circuit breaker is closed.
func (c *Client) IsHealthy() bool {
	return c.breaker.State() == gobreaker.StateClosed
}
