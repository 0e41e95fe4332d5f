package player

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

var (
	// ErrSourceUnavailable covers network failures, non-200 responses, empty
	// bodies and pages with no recognizable ranking table.
	ErrSourceUnavailable = errors.New("player fetch: source unavailable")
	// ErrParse means a table was found but no rows survived parsing.
	ErrParse = errors.New("player fetch: no parsable rows")
)

// tableSelectors is tried in order; the page markup has changed before.
var tableSelectors = []string{
	"table#ranking-table",
	"table#players-table",
	"table.player-table",
	"table.table",
}

// Fetcher retrieves the current player rankings from the configured page.
type Fetcher struct {
	httpClient *http.Client
	url        string
	logger     *logrus.Entry
}

func NewFetcher(url string, logger *logrus.Entry) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		logger:     logger,
	}
}

// Fetch issues one GET against the rankings page and parses the result.
// Partial success is acceptable: any non-empty row set is a successful fetch.
func (f *Fetcher) Fetch(ctx context.Context) ([]Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	// The page serves a challenge to clients that don't look like a browser.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	players, err := parseRankings(doc, f.logger)
	if err != nil {
		return nil, err
	}

	f.logger.WithField("players", len(players)).Info("Fetched players from rankings page")
	return players, nil
}

// parseRankings locates the ranking table and extracts one Player per data
// row. Rows that don't match the expected shape are skipped.
func parseRankings(doc *goquery.Document, logger *logrus.Entry) ([]Player, error) {
	var table *goquery.Selection
	for _, sel := range tableSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			logger.WithField("selector", sel).Debug("Found ranking table")
			table = s
			break
		}
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no ranking table in page", ErrSourceUnavailable)
	}

	var players []Player
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		cell := cells.Eq(1)
		name := strings.TrimSpace(cell.Find("a").First().Text())
		if name == "" {
			return
		}

		meta := strings.TrimSpace(cell.Find("small").First().Text())
		meta = strings.Trim(meta, "()")
		team, position := meta, ""
		if parts := strings.SplitN(meta, " - ", 2); len(parts) == 2 {
			team, position = parts[0], parts[1]
		}

		players = append(players, NewPlayer(name, team, position))
	})

	if len(players) == 0 {
		return nil, ErrParse
	}
	return players, nil
}
