package schedule

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// gameIDLength is the number of hex digest characters kept. Truncation trades
// full collision resistance for short stable IDs; the input domain
// (date x team pair) is small enough for that to hold in practice.
const gameIDLength = 10

// GameID derives a deterministic identifier from a game's date and teams.
// Identical (date, home, away) always yields the identical ID; team name
// casing and spacing do not change the result.
func GameID(date, homeTeam, awayTeam string) string {
	raw := strings.ToLower(date + "_" + homeTeam + "_" + awayTeam)
	raw = strings.ReplaceAll(raw, " ", "_")
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])[:gameIDLength]
}
