package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
	"github.com/gridpool/playoff-pool/internal/platform/id"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
)

// GameDataProvider is the read-only external scoreboard/box-score source.
type GameDataProvider interface {
	ListScoreboardGames(ctx context.Context) ([]ExternalGame, error)
	FetchBoxScore(ctx context.Context, gameID string) (ExternalBoxScore, error)
}

// ExternalGame is one scoreboard entry as reported by the data source.
type ExternalGame struct {
	ID        string
	Name      string
	HomeTeam  string
	AwayTeam  string
	State     string // pre | in | post
	Completed bool
	StartsAt  time.Time
}

type ExternalBoxScore struct {
	GameID string
	Teams  []ExternalTeamStats
}

type ExternalTeamStats struct {
	Team   string
	Groups []ExternalStatGroup
}

// ExternalStatGroup is one stat-category table: shared labels plus one
// value row per athlete.
type ExternalStatGroup struct {
	Name     string
	Labels   []string
	Athletes []ExternalAthleteStats
}

type ExternalAthleteStats struct {
	AthleteID string
	Name      string
	Values    []string
}

// SyncResult summarizes one sync pass. Errors holds per-game failures
// that did not stop the pass; Success is false only when the pass could
// not run at all.
type SyncResult struct {
	RunID          string        `json:"runId"`
	Round          round.Round   `json:"round"`
	Success        bool          `json:"success"`
	GamesProcessed int           `json:"gamesProcessed"`
	PlayersUpdated int           `json:"playersUpdated"`
	Errors         []string      `json:"errors"`
	StartedAt      time.Time     `json:"startedAt"`
	FinishedAt     time.Time     `json:"finishedAt"`
	RoundsSynced   []round.Round `json:"roundsSynced,omitempty"`
}

type ScoreSyncConfig struct {
	// Format is the scoring format applied at sync time. Leagues with a
	// different format recompute from the stored raw stats when reading.
	Format scoring.Format
	// BackfillWorkers caps the worker pool used by Backfill.
	BackfillWorkers int
}

// ScoreSyncService reconciles external game data into per-(player, round)
// score records and keeps game statuses current.
type ScoreSyncService struct {
	provider     GameDataProvider
	playerRepo   player.Repository
	scoreRepo    scoring.Repository
	scheduleRepo schedule.Repository
	idGen        id.Generator
	cfg          ScoreSyncConfig
	logger       *logging.Logger
	now          func() time.Time
}

func NewScoreSyncService(
	provider GameDataProvider,
	playerRepo player.Repository,
	scoreRepo scoring.Repository,
	scheduleRepo schedule.Repository,
	idGen id.Generator,
	cfg ScoreSyncConfig,
	logger *logging.Logger,
) *ScoreSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Format == "" {
		cfg.Format = scoring.FormatPPR
	}
	if cfg.BackfillWorkers <= 0 {
		cfg.BackfillWorkers = 2
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}

	return &ScoreSyncService{
		provider:     provider,
		playerRepo:   playerRepo,
		scoreRepo:    scoreRepo,
		scheduleRepo: scheduleRepo,
		idGen:        idGen,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// SyncScores reconciles every scoreboard game into stored scores for the
// given round. Per-game failures are collected and the pass continues;
// only a failure to enumerate games or load the player index marks the
// whole pass unsuccessful.
func (s *ScoreSyncService) SyncScores(ctx context.Context, r round.Round) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreSyncService.SyncScores")
	defer span.End()

	result := s.newResult(r)

	if s.provider == nil {
		return s.fatal(ctx, result, fmt.Errorf("%w: game data provider is not configured", ErrDependencyUnavailable)), nil
	}

	games, err := s.provider.ListScoreboardGames(ctx)
	if err != nil {
		return s.fatal(ctx, result, fmt.Errorf("list scoreboard games: %w", err)), nil
	}

	index, err := s.loadPlayerIndex(ctx)
	if err != nil {
		return s.fatal(ctx, result, err), nil
	}

	for _, game := range games {
		result.GamesProcessed++
		if err := s.syncOneGame(ctx, game, r, index, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("game %s: %v", game.ID, err))
			s.logger.WarnContext(ctx, "game sync failed, continuing", "game_id", game.ID, "round", string(r), "error", err.Error())
		}
	}

	result.FinishedAt = s.now()
	s.logger.InfoContext(ctx, "score sync finished",
		"run_id", result.RunID,
		"round", string(r),
		"games_processed", result.GamesProcessed,
		"players_updated", result.PlayersUpdated,
		"error_count", len(result.Errors),
	)
	return result, nil
}

// SyncGame reconciles a single game's box score, for manual re-syncs of
// one matchup.
func (s *ScoreSyncService) SyncGame(ctx context.Context, gameID string, r round.Round) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreSyncService.SyncGame")
	defer span.End()

	result := s.newResult(r)

	if gameID == "" {
		return result, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	if s.provider == nil {
		return s.fatal(ctx, result, fmt.Errorf("%w: game data provider is not configured", ErrDependencyUnavailable)), nil
	}

	index, err := s.loadPlayerIndex(ctx)
	if err != nil {
		return s.fatal(ctx, result, err), nil
	}

	result.GamesProcessed = 1
	if err := s.syncOneGame(ctx, ExternalGame{ID: gameID}, r, index, &result); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("game %s: %v", gameID, err))
	}

	result.FinishedAt = s.now()
	return result, nil
}

// Backfill rebuilds stored scores for every round up to and including
// the given one, fanning rounds out over a bounded worker pool. Used
// after scoring-rule fixes to rebuild stored stats from upstream data.
// The live scoreboard only carries the current week, so each round's
// games come from the persisted schedule and are re-fetched box score
// by box score.
func (s *ScoreSyncService) Backfill(ctx context.Context, through round.Round) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreSyncService.Backfill")
	defer span.End()

	combined := s.newResult(through)

	if s.provider == nil {
		return s.fatal(ctx, combined, fmt.Errorf("%w: game data provider is not configured", ErrDependencyUnavailable)), nil
	}

	index, err := s.loadPlayerIndex(ctx)
	if err != nil {
		return s.fatal(ctx, combined, err), nil
	}

	var rounds []round.Round
	for _, r := range round.All() {
		rounds = append(rounds, r)
		if r == through {
			break
		}
	}

	pool, err := ants.NewPool(s.cfg.BackfillWorkers)
	if err != nil {
		return s.fatal(ctx, combined, fmt.Errorf("create backfill worker pool: %w", err)), nil
	}
	defer pool.Release()

	type roundOutcome struct {
		round  round.Round
		result SyncResult
	}

	outcomes := make(chan roundOutcome, len(rounds))
	for _, r := range rounds {
		r := r
		if err := pool.Submit(func() {
			outcomes <- roundOutcome{round: r, result: s.syncScheduledRound(ctx, r, index)}
		}); err != nil {
			outcomes <- roundOutcome{round: r, result: SyncResult{
				Round:   r,
				Success: false,
				Errors:  []string{fmt.Sprintf("submit backfill for round %s: %v", r, err)},
			}}
		}
	}

	collected := make([]roundOutcome, 0, len(rounds))
	for range rounds {
		collected = append(collected, <-outcomes)
	}
	sort.Slice(collected, func(i, j int) bool {
		return indexOfRound(collected[i].round) < indexOfRound(collected[j].round)
	})

	for _, outcome := range collected {
		combined.GamesProcessed += outcome.result.GamesProcessed
		combined.PlayersUpdated += outcome.result.PlayersUpdated
		for _, msg := range outcome.result.Errors {
			combined.Errors = append(combined.Errors, fmt.Sprintf("round %s: %s", outcome.round, msg))
		}
		if !outcome.result.Success {
			combined.Success = false
		}
		combined.RoundsSynced = append(combined.RoundsSynced, outcome.round)
	}

	combined.FinishedAt = s.now()
	return combined, nil
}

// syncScheduledRound re-syncs one round from the games the schedule
// records for it, so an earlier round rebuilds from its own box scores
// rather than whatever the scoreboard currently lists.
func (s *ScoreSyncService) syncScheduledRound(ctx context.Context, r round.Round, index map[string]player.Player) SyncResult {
	result := s.newResult(r)

	games, err := s.scheduleRepo.ListByRound(ctx, r)
	if err != nil {
		return s.fatal(ctx, result, fmt.Errorf("list scheduled games: %w", err))
	}

	for _, game := range games {
		result.GamesProcessed++
		if err := s.syncOneGame(ctx, ExternalGame{ID: game.ESPNGameID}, r, index, &result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("game %s: %v", game.ESPNGameID, err))
			s.logger.WarnContext(ctx, "game sync failed, continuing", "game_id", game.ESPNGameID, "round", string(r), "error", err.Error())
		}
	}

	result.FinishedAt = s.now()
	return result
}

func (s *ScoreSyncService) newResult(r round.Round) SyncResult {
	runID, err := s.idGen.NewID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", s.now().UnixNano())
	}
	return SyncResult{
		RunID:     runID,
		Round:     r,
		Success:   true,
		Errors:    []string{},
		StartedAt: s.now(),
	}
}

func (s *ScoreSyncService) fatal(ctx context.Context, result SyncResult, err error) SyncResult {
	result.Success = false
	result.Errors = append(result.Errors, err.Error())
	result.FinishedAt = s.now()
	s.logger.ErrorContext(ctx, "score sync aborted", "run_id", result.RunID, "round", string(result.Round), "error", err.Error())
	return result
}

func (s *ScoreSyncService) loadPlayerIndex(ctx context.Context) (map[string]player.Player, error) {
	players, err := s.playerRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load player pool: %w", err)
	}

	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		if p.ESPNID == "" {
			continue
		}
		index[p.ESPNID] = p
	}
	return index, nil
}

func (s *ScoreSyncService) syncOneGame(
	ctx context.Context,
	game ExternalGame,
	r round.Round,
	index map[string]player.Player,
	result *SyncResult,
) error {
	box, err := s.provider.FetchBoxScore(ctx, game.ID)
	if err != nil {
		return fmt.Errorf("fetch box score: %w", err)
	}

	// One athlete appears in several category groups (a rushing QB shows
	// up under both passing and rushing), so stats are accumulated per
	// athlete across the whole game before scoring and upserting once.
	type athleteAgg struct {
		player player.Player
		stats  scoring.PlayerStats
	}
	aggregates := make(map[string]*athleteAgg)
	order := make([]string, 0)

	for _, teamStats := range box.Teams {
		for _, group := range teamStats.Groups {
			category, ok := scoring.ParseCategory(group.Name)
			if !ok {
				continue
			}
			for _, athlete := range group.Athletes {
				p, ok := index[athlete.AthleteID]
				if !ok {
					// Expected: the pool only covers a curated subset.
					continue
				}

				stats := scoring.ExtractStats(category, group.Labels, athlete.Values)
				if stats.IsZero() {
					continue
				}

				agg, ok := aggregates[p.Key]
				if !ok {
					agg = &athleteAgg{player: p}
					aggregates[p.Key] = agg
					order = append(order, p.Key)
				}
				agg.stats = agg.stats.Merge(stats)
			}
		}
	}

	settings := scoring.Normalize(s.cfg.Format, nil)
	syncedAt := s.now()

	for _, key := range order {
		agg := aggregates[key]
		score := scoring.PlayerScore{
			PlayerKey:    key,
			GameID:       game.ID,
			Round:        r,
			Points:       scoring.CalculatePoints(agg.stats, settings),
			Stats:        agg.stats,
			LastSyncedAt: syncedAt,
		}
		if err := s.scoreRepo.UpsertScore(ctx, score); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("upsert score for %s: %v", key, err))
			continue
		}
		result.PlayersUpdated++
	}

	s.updateGameStatus(ctx, game, result)
	return nil
}

func (s *ScoreSyncService) updateGameStatus(ctx context.Context, game ExternalGame, result *SyncResult) {
	// SyncGame passes a bare game id with no scoreboard state; leave the
	// stored status alone in that case.
	if game.State == "" && !game.Completed {
		return
	}

	status := schedule.StatusScheduled
	switch {
	case game.Completed:
		status = schedule.StatusFinal
	case game.State == "in":
		status = schedule.StatusInProgress
	}

	if _, ok, err := s.scheduleRepo.GetByESPNGameID(ctx, game.ID); err != nil || !ok {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("look up scheduled game %s: %v", game.ID, err))
		}
		return
	}

	if err := s.scheduleRepo.UpdateStatus(ctx, game.ID, status); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("update status for game %s: %v", game.ID, err))
	}
}

func indexOfRound(r round.Round) int {
	for i, known := range round.All() {
		if known == r {
			return i
		}
	}
	return len(round.All())
}
