package memory

import (
	"context"
	"sync"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu     sync.RWMutex
	items  map[string]schedule.Game
	orders []string
}

func NewScheduleRepository(games []schedule.Game) *ScheduleRepository {
	items := make(map[string]schedule.Game, len(games))
	orders := make([]string, 0, len(games))

	for _, g := range games {
		items[g.ESPNGameID] = g
		orders = append(orders, g.ESPNGameID)
	}

	return &ScheduleRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ScheduleRepository) ListByRound(_ context.Context, rd round.Round) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Game, 0)
	for _, id := range r.orders {
		g := r.items[id]
		if g.Round != rd {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *ScheduleRepository) GetByESPNGameID(_ context.Context, espnGameID string) (schedule.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[espnGameID]
	if !ok {
		return schedule.Game{}, false, nil
	}
	return g, true, nil
}

func (r *ScheduleRepository) GetByTeamAndRound(_ context.Context, team string, rd round.Round) (schedule.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		g := r.items[id]
		if g.Round != rd {
			continue
		}
		if g.HomeTeam == team || g.AwayTeam == team {
			return g, true, nil
		}
	}
	return schedule.Game{}, false, nil
}

func (r *ScheduleRepository) UpdateStatus(_ context.Context, espnGameID string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[espnGameID]
	if !ok {
		return nil
	}
	g.Status = schedule.NormalizeStatus(status)
	r.items[espnGameID] = g
	return nil
}
