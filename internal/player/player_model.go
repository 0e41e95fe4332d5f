package player

import (
	"fmt"
	"time"
)

// Player is a single entry from the rankings page. Immutable once constructed;
// duplicates are possible if the source lists a player twice.
type Player struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Display  string `json:"display"`
}

// NewPlayer builds a Player with its derived display string.
func NewPlayer(name, team, position string) Player {
	return Player{
		Name:     name,
		Team:     team,
		Position: position,
		Display:  fmt.Sprintf("%s (%s - %s)", name, team, position),
	}
}

// Snapshot is a timestamped full copy of the player list as persisted to the
// cache file.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Players   []Player  `json:"players"`
}

// FallbackPlayers returns the fixed list of top NFL players served when
// neither the cache nor a live fetch can produce data.
func FallbackPlayers() []Player {
	return []Player{
		NewPlayer("Christian McCaffrey", "SF", "RB"),
		NewPlayer("Tyreek Hill", "MIA", "WR"),
		NewPlayer("Justin Jefferson", "MIN", "WR"),
		NewPlayer("Ja'Marr Chase", "CIN", "WR"),
		NewPlayer("Travis Kelce", "KC", "TE"),
		NewPlayer("Bijan Robinson", "ATL", "RB"),
		NewPlayer("Stefon Diggs", "BUF", "WR"),
		NewPlayer("Saquon Barkley", "NYG", "RB"),
		NewPlayer("Josh Allen", "BUF", "QB"),
		NewPlayer("Patrick Mahomes", "KC", "QB"),
		NewPlayer("Jalen Hurts", "PHI", "QB"),
		NewPlayer("CeeDee Lamb", "DAL", "WR"),
		NewPlayer("Davante Adams", "LV", "WR"),
		NewPlayer("Austin Ekeler", "LAC", "RB"),
		NewPlayer("Tony Pollard", "DAL", "RB"),
		NewPlayer("Derrick Henry", "TEN", "RB"),
		NewPlayer("Amon-Ra St. Brown", "DET", "WR"),
		NewPlayer("Mark Andrews", "BAL", "TE"),
		NewPlayer("DeVonta Smith", "PHI", "WR"),
		NewPlayer("Kenneth Walker III", "SEA", "RB"),
	}
}
