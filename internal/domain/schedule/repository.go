package schedule

import (
	"context"

	"github.com/gridpool/playoff-pool/internal/domain/round"
)

// Repository exposes bracket-schedule reads plus the status write the
// sync pass performs after reconciling a game.
type Repository interface {
	ListByRound(ctx context.Context, r round.Round) ([]Game, error)
	GetByESPNGameID(ctx context.Context, espnGameID string) (Game, bool, error)
	GetByTeamAndRound(ctx context.Context, team string, r round.Round) (Game, bool, error)
	UpdateStatus(ctx context.Context, espnGameID string, status string) error
}
