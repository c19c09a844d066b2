package usecase

import (
	"context"
	"fmt"

	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
)

// AdvanceResult reports the outcome of one advancement attempt. A false
// Advanced with a message is a normal outcome, not a failure.
type AdvanceResult struct {
	Advanced        bool        `json:"advanced"`
	Message         string      `json:"message"`
	PreviousRound   round.Round `json:"previousRound"`
	NextRound       round.Round `json:"nextRound,omitempty"`
	RostersAdvanced int         `json:"rostersAdvanced"`
	GamesTotal      int         `json:"gamesTotal"`
	GamesFinal      int         `json:"gamesFinal"`
}

// RoundAdvanceService moves the bracket forward: when every game of the
// current round is final it copies rosters into the next round, applying
// schedule-driven elimination and loyalty multipliers, then flips the
// stored current round.
type RoundAdvanceService struct {
	rounds       *RoundService
	rosterRepo   roster.Repository
	scheduleRepo schedule.Repository
	logger       *logging.Logger
}

func NewRoundAdvanceService(
	rounds *RoundService,
	rosterRepo roster.Repository,
	scheduleRepo schedule.Repository,
	logger *logging.Logger,
) *RoundAdvanceService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RoundAdvanceService{
		rounds:       rounds,
		rosterRepo:   rosterRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Advance checks preconditions and, when they hold, advances every roster
// from the current round into the next one. Re-running an already applied
// advancement overwrites the same (user, league, round) rows, so the
// operation stays idempotent; a storage failure mid-way can leave rosters
// written for some users but not others, reported through the error.
func (s *RoundAdvanceService) Advance(ctx context.Context) (AdvanceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundAdvanceService.Advance")
	defer span.End()

	current, err := s.rounds.CurrentRound(ctx)
	if err != nil {
		return AdvanceResult{}, err
	}

	result := AdvanceResult{PreviousRound: current}

	next, ok := current.Next()
	if !ok {
		result.Message = fmt.Sprintf("%s is the final round, nothing to advance to", current.Name())
		return result, nil
	}
	result.NextRound = next

	currentGames, err := s.scheduleRepo.ListByRound(ctx, current)
	if err != nil {
		return result, fmt.Errorf("load %s schedule: %w", current, err)
	}
	result.GamesTotal = len(currentGames)

	if len(currentGames) == 0 {
		result.Message = fmt.Sprintf("no games scheduled for the %s round yet", current.Name())
		return result, nil
	}

	inProgress := 0
	for _, game := range currentGames {
		switch schedule.NormalizeStatus(game.Status) {
		case schedule.StatusFinal:
			result.GamesFinal++
		case schedule.StatusInProgress:
			inProgress++
		}
	}
	if result.GamesFinal < result.GamesTotal {
		if inProgress > 0 {
			result.Message = fmt.Sprintf("%d of %d %s games still in progress", inProgress, result.GamesTotal, current.Name())
		} else {
			result.Message = fmt.Sprintf("only %d of %d %s games are final", result.GamesFinal, result.GamesTotal, current.Name())
		}
		return result, nil
	}

	nextGames, err := s.scheduleRepo.ListByRound(ctx, next)
	if err != nil {
		return result, fmt.Errorf("load %s schedule: %w", next, err)
	}
	if len(nextGames) == 0 {
		result.Message = fmt.Sprintf("the %s schedule is not loaded yet", next.Name())
		return result, nil
	}
	activeTeams := schedule.ActiveTeams(nextGames)

	rosters, err := s.rosterRepo.ListByRound(ctx, current)
	if err != nil {
		return result, fmt.Errorf("load %s rosters: %w", current, err)
	}

	for _, existing := range rosters {
		advanced := advanceRoster(existing, next, activeTeams)
		if err := s.rosterRepo.Upsert(ctx, advanced); err != nil {
			return result, fmt.Errorf("upsert roster user=%s league=%s round=%s: %w", advanced.UserID, advanced.LeagueID, next, err)
		}
		result.RostersAdvanced++
	}

	if err := s.rounds.SetCurrentRound(ctx, next); err != nil {
		return result, err
	}

	result.Advanced = true
	if result.RostersAdvanced == 0 {
		result.Message = fmt.Sprintf("advanced to the %s round with no rosters to copy", next.Name())
	} else {
		result.Message = fmt.Sprintf("advanced %d rosters to the %s round", result.RostersAdvanced, next.Name())
	}

	s.logger.InfoContext(ctx, "round advanced",
		"previous_round", string(current),
		"next_round", string(next),
		"rosters_advanced", result.RostersAdvanced,
	)
	return result, nil
}

// advanceRoster builds the next-round draft for one roster. Slots whose
// player's team survives carry forward with an incremented multiplier;
// eliminated or empty slots reset.
func advanceRoster(current roster.Roster, next round.Round, activeTeams map[string]struct{}) roster.Roster {
	advanced := roster.Roster{
		UserID:   current.UserID,
		LeagueID: current.LeagueID,
		Round:    next,
	}

	for _, slot := range roster.Slots() {
		advanced.SetEntry(slot, advanceSlot(current.Entry(slot), activeTeams))
	}
	return advanced
}

func advanceSlot(entry roster.Entry, activeTeams map[string]struct{}) roster.Entry {
	if entry.PlayerKey == nil || *entry.PlayerKey == "" {
		return roster.EmptyEntry()
	}

	team, ok := player.TeamFromKey(*entry.PlayerKey)
	if !ok {
		return roster.EmptyEntry()
	}
	if _, active := activeTeams[team]; !active {
		return roster.EmptyEntry()
	}

	held := entry.WeeksHeld + 1
	if held > roster.MaxWeeksHeld {
		held = roster.MaxWeeksHeld
	}
	if held < roster.MinWeeksHeld {
		held = roster.MinWeeksHeld
	}

	key := *entry.PlayerKey
	return roster.Entry{PlayerKey: &key, WeeksHeld: held}
}
