package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/gridpool/playoff-pool/internal/platform/logging"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

// Scheduler drives the periodic score sync and the round advancement
// check while the bracket is live. Both jobs are also exposed as
// internal HTTP endpoints for manual triggers; this just keeps them
// running unattended.
type Scheduler struct {
	s              gocron.Scheduler
	roundService   *usecase.RoundService
	syncService    *usecase.ScoreSyncService
	advanceService *usecase.RoundAdvanceService
	logger         *logging.Logger

	syncInterval    time.Duration
	advanceInterval time.Duration
}

func New(
	roundService *usecase.RoundService,
	syncService *usecase.ScoreSyncService,
	advanceService *usecase.RoundAdvanceService,
	syncInterval time.Duration,
	advanceInterval time.Duration,
	logger *logging.Logger,
) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Scheduler{
		s:               s,
		roundService:    roundService,
		syncService:     syncService,
		advanceService:  advanceService,
		logger:          logger,
		syncInterval:    syncInterval,
		advanceInterval: advanceInterval,
	}, nil
}

func (s *Scheduler) Start() error {
	if _, err := s.s.NewJob(
		gocron.DurationJob(s.syncInterval),
		gocron.NewTask(s.runScoreSync),
	); err != nil {
		return fmt.Errorf("create score sync job: %w", err)
	}

	if _, err := s.s.NewJob(
		gocron.DurationJob(s.advanceInterval),
		gocron.NewTask(s.runAdvanceCheck),
	); err != nil {
		return fmt.Errorf("create advance check job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runScoreSync() {
	ctx := context.Background()

	current, err := s.roundService.CurrentRound(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled sync: resolve current round failed", "error", err)
		return
	}

	result, err := s.syncService.SyncScores(ctx, current)
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled sync failed", "round", string(current), "error", err)
		return
	}

	s.logger.InfoContext(ctx, "scheduled sync finished",
		"round", string(current),
		"games_processed", result.GamesProcessed,
		"players_updated", result.PlayersUpdated,
		"errors", len(result.Errors),
	)
}

func (s *Scheduler) runAdvanceCheck() {
	ctx := context.Background()

	result, err := s.advanceService.Advance(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled advance check failed", "error", err)
		return
	}

	if result.Advanced {
		s.logger.InfoContext(ctx, "round advanced",
			"from", string(result.PreviousRound),
			"to", string(result.NextRound),
			"rosters", result.RostersAdvanced,
		)
		return
	}

	s.logger.DebugContext(ctx, "round not ready to advance", "reason", result.Message)
}
