package player

import (
	"fmt"
	"strings"
)

// Position represents the roster-eligible NFL position groups.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DST"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// Player is one selectable athlete (or team defense) in the playoff pool.
// Key is the stable identifier "<Initial>.<LastName>-<TEAM>-<POS>" that
// joins rosters, the player catalog, and score records.
type Player struct {
	Key      string
	ESPNID   string
	FullName string
	Team     string
	Position Position
	IsActive bool
}

func (p Player) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("player key is required")
	}
	if p.FullName == "" {
		return fmt.Errorf("player full name is required")
	}
	if p.Team == "" {
		return fmt.Errorf("player team is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}

// TeamFromKey recovers the team abbreviation from a player key by taking
// the second-to-last dash segment. Last names containing dashes stay in
// the leading segments and do not break the split. Team defenses use the
// two-segment form "<TEAM>-DST".
func TeamFromKey(key string) (string, bool) {
	parts := strings.Split(key, "-")
	if len(parts) == 2 && Position(parts[1]) == PositionDefense {
		if parts[0] == "" {
			return "", false
		}
		return parts[0], true
	}
	if len(parts) < 3 {
		return "", false
	}
	team := parts[len(parts)-2]
	if team == "" {
		return "", false
	}
	return team, true
}
