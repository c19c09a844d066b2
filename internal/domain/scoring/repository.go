package scoring

import (
	"context"

	"github.com/gridpool/playoff-pool/internal/domain/round"
)

// Repository stores per-(player, round) score records. Upsert is the only
// mutation path so concurrent sync passes stay last-write-wins on the
// unique key instead of duplicating rows.
type Repository interface {
	UpsertScore(ctx context.Context, score PlayerScore) error
	GetScore(ctx context.Context, playerKey string, r round.Round) (PlayerScore, bool, error)
	ListScoresByRound(ctx context.Context, r round.Round) ([]PlayerScore, error)
}
