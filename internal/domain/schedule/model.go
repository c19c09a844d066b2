package schedule

import (
	"strings"
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/round"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinal      = "final"
)

// Game is one playoff matchup on the bracket schedule.
type Game struct {
	ESPNGameID string
	Round      round.Round
	HomeTeam   string
	AwayTeam   string
	KickoffAt  time.Time
	Status     string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsFinalStatus(status string) bool {
	return NormalizeStatus(status) == StatusFinal
}

// ActiveTeams returns the union of home and away teams across games.
// Teams absent from the set are eliminated for roster advancement.
func ActiveTeams(games []Game) map[string]struct{} {
	teams := make(map[string]struct{}, len(games)*2)
	for _, game := range games {
		if game.HomeTeam != "" {
			teams[game.HomeTeam] = struct{}{}
		}
		if game.AwayTeam != "" {
			teams[game.AwayTeam] = struct{}{}
		}
	}
	return teams
}
