package memory

import (
	"context"
	"sync"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
)

type scoreKey struct {
	playerKey string
	round     round.Round
}

type ScoreRepository struct {
	mu     sync.RWMutex
	items  map[scoreKey]scoring.PlayerScore
	orders []scoreKey
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{
		items: make(map[scoreKey]scoring.PlayerScore),
	}
}

func (r *ScoreRepository) UpsertScore(_ context.Context, score scoring.PlayerScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scoreKey{playerKey: score.PlayerKey, round: score.Round}
	if _, ok := r.items[key]; !ok {
		r.orders = append(r.orders, key)
	}
	r.items[key] = score
	return nil
}

func (r *ScoreRepository) GetScore(_ context.Context, playerKey string, rd round.Round) (scoring.PlayerScore, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[scoreKey{playerKey: playerKey, round: rd}]
	if !ok {
		return scoring.PlayerScore{}, false, nil
	}
	return s, true, nil
}

func (r *ScoreRepository) ListScoresByRound(_ context.Context, rd round.Round) ([]scoring.PlayerScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.PlayerScore, 0)
	for _, key := range r.orders {
		if key.round != rd {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}
