package scoring

import (
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/round"
)

// PlayerScore is one player's computed fantasy total for one playoff
// round, together with the raw statistics it was computed from. Scores
// are keyed by (player key, round) and overwritten on every sync pass.
type PlayerScore struct {
	PlayerKey    string
	GameID       string
	Round        round.Round
	Points       float64
	Stats        PlayerStats
	LastSyncedAt time.Time
}
