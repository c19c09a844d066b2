package league

import (
	"fmt"

	"github.com/gridpool/playoff-pool/internal/domain/scoring"
)

// League is one playoff pool: a group of users whose rosters are scored
// under the league's format and optional scoring override.
type League struct {
	ID              string
	Name            string
	JoinCode        string
	Format          scoring.Format
	ScoringOverride *scoring.Override
	CommissionerID  string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if _, ok := scoring.ParseFormat(string(l.Format)); !ok {
		return fmt.Errorf("invalid scoring format: %s", l.Format)
	}

	return nil
}

// Settings resolves the league's full scoring table.
func (l League) Settings() scoring.Settings {
	return scoring.Normalize(l.Format, l.ScoringOverride)
}
