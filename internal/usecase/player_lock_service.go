package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
)

// LockStatus reports whether a player can still be swapped into a roster
// slot. A player locks when their team's game for the round kicks off.
type LockStatus struct {
	PlayerKey     string         `json:"playerKey"`
	Locked        bool           `json:"locked"`
	KickoffAt     *time.Time     `json:"kickoffAt,omitempty"`
	TimeUntilLock *time.Duration `json:"timeUntilLock,omitempty"`
}

// PlayerLockService answers roster-edit eligibility questions from the
// bracket schedule.
type PlayerLockService struct {
	scheduleRepo schedule.Repository
	rosterRepo   roster.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewPlayerLockService(scheduleRepo schedule.Repository, rosterRepo roster.Repository, logger *logging.Logger) *PlayerLockService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerLockService{
		scheduleRepo: scheduleRepo,
		rosterRepo:   rosterRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// PlayerLock resolves one player's lock status for a round. Players whose
// team has no scheduled game stay unlocked.
func (s *PlayerLockService) PlayerLock(ctx context.Context, playerKey string, r round.Round) (LockStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerLockService.PlayerLock")
	defer span.End()

	if playerKey == "" {
		return LockStatus{}, fmt.Errorf("%w: player key is required", ErrInvalidInput)
	}

	status := LockStatus{PlayerKey: playerKey}

	team, ok := player.TeamFromKey(playerKey)
	if !ok {
		return status, fmt.Errorf("%w: malformed player key %q", ErrInvalidInput, playerKey)
	}

	game, ok, err := s.scheduleRepo.GetByTeamAndRound(ctx, team, r)
	if err != nil {
		return status, fmt.Errorf("look up game for team %s round %s: %w", team, r, err)
	}
	if !ok {
		return status, nil
	}

	kickoff := game.KickoffAt
	status.KickoffAt = &kickoff

	now := s.now()
	if !now.Before(kickoff) {
		status.Locked = true
		return status, nil
	}

	until := kickoff.Sub(now)
	status.TimeUntilLock = &until
	return status, nil
}

// RosterLocks resolves lock status for every filled slot of a roster.
func (s *PlayerLockService) RosterLocks(ctx context.Context, userID, leagueID string, r round.Round) (map[roster.Slot]LockStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerLockService.RosterLocks")
	defer span.End()

	ros, ok, err := s.rosterRepo.Get(ctx, userID, leagueID, r)
	if err != nil {
		return nil, fmt.Errorf("load roster user=%s league=%s round=%s: %w", userID, leagueID, r, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: roster user=%s league=%s round=%s", ErrNotFound, userID, leagueID, r)
	}

	locks := make(map[roster.Slot]LockStatus)
	for _, slot := range roster.Slots() {
		entry := ros.Entry(slot)
		if entry.PlayerKey == nil || *entry.PlayerKey == "" {
			continue
		}

		status, err := s.PlayerLock(ctx, *entry.PlayerKey, r)
		if err != nil {
			return nil, err
		}
		locks[slot] = status
	}

	return locks, nil
}
