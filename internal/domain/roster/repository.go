package roster

import (
	"context"

	"github.com/gridpool/playoff-pool/internal/domain/round"
)

// Repository stores rosters keyed by (user, league, round). Upsert
// overwrites on the unique key so advancement re-runs stay idempotent.
type Repository interface {
	Get(ctx context.Context, userID, leagueID string, r round.Round) (Roster, bool, error)
	ListByRound(ctx context.Context, r round.Round) ([]Roster, error)
	ListByLeagueAndRound(ctx context.Context, leagueID string, r round.Round) ([]Roster, error)
	Upsert(ctx context.Context, ros Roster) error
}
