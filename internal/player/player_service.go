package player

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// PlayerFetcher produces the current player list from a live source.
type PlayerFetcher interface {
	Fetch(ctx context.Context) ([]Player, error)
}

// Service owns the in-memory player list and the cache file for the lifetime
// of the process. One instance is constructed in main and passed to the
// handlers.
type Service struct {
	mu      sync.RWMutex
	players []Player

	cache   *Cache
	fetcher PlayerFetcher
	logger  *logrus.Entry
}

// NewService builds the directory service and primes it from the cache when a
// fresh snapshot is available. A cache failure is never fatal.
func NewService(cache *Cache, fetcher PlayerFetcher, logger *logrus.Entry) *Service {
	s := &Service{
		cache:   cache,
		fetcher: fetcher,
		logger:  logger,
	}

	players, err := cache.Load()
	if err != nil {
		logCacheResult(logger, err)
	} else {
		s.players = players
	}
	return s
}

// GetPlayers returns the in-memory list, refreshing it from cache, live fetch
// or the static fallback when empty. It never fails outward: absence of data
// degrades to the fallback list, not an error.
func (s *Service) GetPlayers(ctx context.Context) []Player {
	s.mu.RLock()
	if len(s.players) > 0 {
		defer s.mu.RUnlock()
		return copyPlayers(s.players)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.players) > 0 { // another request populated the list meanwhile
		return copyPlayers(s.players)
	}

	players, err := s.cache.Load()
	if err != nil {
		logCacheResult(s.logger, err)

		players, err = s.fetcher.Fetch(ctx)
		if err != nil {
			s.logger.WithError(err).Error("Live fetch failed, using fallback players")
			players = FallbackPlayers()
		}

		// Persist what we obtained; a cache hit keeps its original timestamp.
		if err := s.cache.Save(players); err != nil {
			s.logger.WithError(err).Error("Failed to save player cache")
		}
	}

	s.players = players
	return copyPlayers(s.players)
}

// Search returns players whose name, team or position contains the query,
// case-insensitively. It searches whatever is currently in memory and never
// errors; callers wanting a populated directory call GetPlayers first.
func (s *Service) Search(query string) []Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	results := make([]Player, 0)
	for _, p := range s.players {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Team), query) ||
			strings.Contains(strings.ToLower(p.Position), query) {
			results = append(results, p)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"query":   query,
		"matches": len(results),
	}).Debug("Player search completed")
	return results
}

func copyPlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

func logCacheResult(logger *logrus.Entry, err error) {
	switch {
	case errors.Is(err, ErrCacheMiss):
		logger.Info("No player cache file found")
	case errors.Is(err, ErrCacheExpired):
		logger.Info("Player cache has expired")
	default:
		logger.WithError(err).Error("Error loading player cache")
	}
}
