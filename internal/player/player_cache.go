package player

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// CacheTTL is how long a snapshot stays usable without a refetch.
const CacheTTL = 24 * time.Hour

var (
	// ErrCacheMiss means no snapshot file exists.
	ErrCacheMiss = errors.New("player cache: no snapshot")
	// ErrCacheExpired means a snapshot exists but its timestamp is older than
	// the TTL. The stale list is not served.
	ErrCacheExpired = errors.New("player cache: snapshot expired")
)

// Cache persists a timestamped snapshot of the player list to a JSON file.
// It reports failures as typed errors and leaves the degrade-or-propagate
// decision to the caller.
type Cache struct {
	path   string
	ttl    time.Duration
	logger *logrus.Entry
}

func NewCache(path string, logger *logrus.Entry) *Cache {
	return &Cache{path: path, ttl: CacheTTL, logger: logger}
}

// Load reads the snapshot from disk. It returns ErrCacheMiss when the file
// does not exist, ErrCacheExpired when the snapshot is older than the TTL,
// and a wrapped error when the file cannot be read or decoded.
func (c *Cache) Load() ([]Player, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("player cache: read %s: %w", c.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("player cache: decode %s: %w", c.path, err)
	}

	if time.Since(snap.Timestamp) >= c.ttl {
		return nil, ErrCacheExpired
	}

	c.logger.WithFields(logrus.Fields{
		"players":   len(snap.Players),
		"cached_at": snap.Timestamp,
	}).Info("Loaded players from cache")
	return snap.Players, nil
}

// Save writes a fresh snapshot (current timestamp plus the full list),
// creating the containing directory if needed.
func (c *Cache) Save(players []Player) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("player cache: create dir for %s: %w", c.path, err)
	}

	data, err := json.Marshal(Snapshot{Timestamp: time.Now(), Players: players})
	if err != nil {
		return fmt.Errorf("player cache: encode snapshot: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("player cache: write %s: %w", c.path, err)
	}

	c.logger.WithField("players", len(players)).Info("Saved players to cache")
	return nil
}
