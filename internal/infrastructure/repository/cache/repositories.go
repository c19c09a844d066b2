package cache

import (
	"context"

	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	basecache "github.com/gridpool/playoff-pool/internal/platform/cache"
)

// LeagueRepository is a read-through cache over league storage. League
// rows change only by operator action, so TTL expiry is the sole
// invalidation path.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

// PlayerRepository caches the playoff player pool. The pool is fixed for
// the duration of a bracket, so cached reads stay correct until TTL.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListActive(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:active", func(ctx context.Context) (any, error) {
		items, err := r.next.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByKey(ctx context.Context, playerKey string) (player.Player, bool, error) {
	key := "player:key:" + playerKey
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByKey(ctx, playerKey)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByKey{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByKey)
	return cached.value, cached.exists, nil
}

type cachedPlayerByKey struct {
	value  player.Player
	exists bool
}

// ScheduleRepository caches bracket-schedule reads. UpdateStatus drops
// every schedule key so the next read observes the new game state.
type ScheduleRepository struct {
	next  schedule.Repository
	cache *basecache.Store
}

func NewScheduleRepository(next schedule.Repository, cache *basecache.Store) *ScheduleRepository {
	return &ScheduleRepository{next: next, cache: cache}
}

func (r *ScheduleRepository) ListByRound(ctx context.Context, rd round.Round) ([]schedule.Game, error) {
	key := "schedule:round:" + string(rd)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByRound(ctx, rd)
		if err != nil {
			return nil, err
		}
		return append([]schedule.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]schedule.Game)
	return append([]schedule.Game(nil), items...), nil
}

func (r *ScheduleRepository) GetByESPNGameID(ctx context.Context, espnGameID string) (schedule.Game, bool, error) {
	key := "schedule:game:" + espnGameID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByESPNGameID(ctx, espnGameID)
		if err != nil {
			return nil, err
		}
		return cachedGame{value: item, exists: exists}, nil
	})
	if err != nil {
		return schedule.Game{}, false, err
	}

	cached, _ := v.(cachedGame)
	return cached.value, cached.exists, nil
}

func (r *ScheduleRepository) GetByTeamAndRound(ctx context.Context, team string, rd round.Round) (schedule.Game, bool, error) {
	key := "schedule:team:" + team + ":" + string(rd)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByTeamAndRound(ctx, team, rd)
		if err != nil {
			return nil, err
		}
		return cachedGame{value: item, exists: exists}, nil
	})
	if err != nil {
		return schedule.Game{}, false, err
	}

	cached, _ := v.(cachedGame)
	return cached.value, cached.exists, nil
}

func (r *ScheduleRepository) UpdateStatus(ctx context.Context, espnGameID string, status string) error {
	if err := r.next.UpdateStatus(ctx, espnGameID, status); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "schedule:")
	return nil
}

type cachedGame struct {
	value  schedule.Game
	exists bool
}
