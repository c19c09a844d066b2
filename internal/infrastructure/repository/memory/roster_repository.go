package memory

import (
	"context"
	"sync"

	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
)

type rosterKey struct {
	userID   string
	leagueID string
	round    round.Round
}

type RosterRepository struct {
	mu     sync.RWMutex
	items  map[rosterKey]roster.Roster
	orders []rosterKey
}

func NewRosterRepository(rosters []roster.Roster) *RosterRepository {
	r := &RosterRepository{
		items: make(map[rosterKey]roster.Roster, len(rosters)),
	}
	for _, ros := range rosters {
		r.put(ros)
	}
	return r
}

func (r *RosterRepository) put(ros roster.Roster) {
	key := rosterKey{userID: ros.UserID, leagueID: ros.LeagueID, round: ros.Round}
	if _, ok := r.items[key]; !ok {
		r.orders = append(r.orders, key)
	}
	r.items[key] = ros
}

func (r *RosterRepository) Get(_ context.Context, userID, leagueID string, rd round.Round) (roster.Roster, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ros, ok := r.items[rosterKey{userID: userID, leagueID: leagueID, round: rd}]
	if !ok {
		return roster.Roster{}, false, nil
	}
	return ros, true, nil
}

func (r *RosterRepository) ListByRound(_ context.Context, rd round.Round) ([]roster.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Roster, 0)
	for _, key := range r.orders {
		if key.round != rd {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *RosterRepository) ListByLeagueAndRound(_ context.Context, leagueID string, rd round.Round) ([]roster.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Roster, 0)
	for _, key := range r.orders {
		if key.leagueID != leagueID || key.round != rd {
			continue
		}
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *RosterRepository) Upsert(_ context.Context, ros roster.Roster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(ros)
	return nil
}
