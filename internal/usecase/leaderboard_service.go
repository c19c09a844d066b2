package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
)

// SlotScore is one roster slot's contribution to a total.
type SlotScore struct {
	Slot        roster.Slot `json:"slot"`
	PlayerKey   string      `json:"playerKey"`
	BasePoints  float64     `json:"basePoints"`
	Multiplier  int         `json:"multiplier"`
	FinalPoints float64     `json:"finalPoints"`
}

// RosterScore is one user's scored roster for a round.
type RosterScore struct {
	UserID      string      `json:"userId"`
	LeagueID    string      `json:"leagueId"`
	Round       round.Round `json:"round"`
	TotalPoints float64     `json:"totalPoints"`
	Breakdown   []SlotScore `json:"breakdown"`
}

// LeaderboardEntry is one ranked row. Ranks are dense: users with equal
// totals share a rank.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	TotalPoints float64 `json:"totalPoints"`
}

// LeaderboardService combines rosters, stored scores, and league scoring
// settings into ranked totals. Base points are recomputed from the stored
// raw stats under each league's own settings, so leagues with different
// formats share one synced stat set.
type LeaderboardService struct {
	leagueRepo league.Repository
	rosterRepo roster.Repository
	scoreRepo  scoring.Repository
	logger     *logging.Logger
}

func NewLeaderboardService(
	leagueRepo league.Repository,
	rosterRepo roster.Repository,
	scoreRepo scoring.Repository,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeaderboardService{
		leagueRepo: leagueRepo,
		rosterRepo: rosterRepo,
		scoreRepo:  scoreRepo,
		logger:     logger,
	}
}

// Leaderboard ranks every roster in a league for a round.
func (s *LeaderboardService) Leaderboard(ctx context.Context, leagueID string, r round.Round) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Leaderboard")
	defer span.End()

	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, ok, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league %s: %w", leagueID, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	var (
		rosters []roster.Roster
		scores  []scoring.PlayerScore
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		rosters, err = s.rosterRepo.ListByLeagueAndRound(ctx, leagueID, r)
		if err != nil {
			return fmt.Errorf("load rosters league=%s round=%s: %w", leagueID, r, err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		scores, err = s.scoreRepo.ListScoresByRound(ctx, r)
		if err != nil {
			return fmt.Errorf("load scores round=%s: %w", r, err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	settings := lg.Settings()
	basePoints := basePointsByPlayer(scores, settings)

	entries := make([]LeaderboardEntry, 0, len(rosters))
	for _, ros := range rosters {
		scored := scoreRoster(ros, basePoints)
		entries = append(entries, LeaderboardEntry{
			UserID:      ros.UserID,
			TotalPoints: scored.TotalPoints,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})

	rank := 0
	lastPoints := math.Inf(1)
	for i := range entries {
		if entries[i].TotalPoints != lastPoints {
			rank++
			lastPoints = entries[i].TotalPoints
		}
		entries[i].Rank = rank
	}

	return entries, nil
}

// ScoreRoster computes one user's scored roster with a per-slot
// breakdown.
func (s *LeaderboardService) ScoreRoster(ctx context.Context, leagueID, userID string, r round.Round) (RosterScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.ScoreRoster")
	defer span.End()

	if leagueID == "" || userID == "" {
		return RosterScore{}, fmt.Errorf("%w: league id and user id are required", ErrInvalidInput)
	}

	lg, ok, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return RosterScore{}, fmt.Errorf("load league %s: %w", leagueID, err)
	}
	if !ok {
		return RosterScore{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	ros, ok, err := s.rosterRepo.Get(ctx, userID, leagueID, r)
	if err != nil {
		return RosterScore{}, fmt.Errorf("load roster user=%s league=%s round=%s: %w", userID, leagueID, r, err)
	}
	if !ok {
		return RosterScore{}, fmt.Errorf("%w: roster user=%s league=%s round=%s", ErrNotFound, userID, leagueID, r)
	}

	scores, err := s.scoreRepo.ListScoresByRound(ctx, r)
	if err != nil {
		return RosterScore{}, fmt.Errorf("load scores round=%s: %w", r, err)
	}

	return scoreRoster(ros, basePointsByPlayer(scores, lg.Settings())), nil
}

func basePointsByPlayer(scores []scoring.PlayerScore, settings scoring.Settings) map[string]float64 {
	points := make(map[string]float64, len(scores))
	for _, score := range scores {
		points[score.PlayerKey] = scoring.CalculatePoints(score.Stats, settings)
	}
	return points
}

func scoreRoster(ros roster.Roster, basePoints map[string]float64) RosterScore {
	scored := RosterScore{
		UserID:    ros.UserID,
		LeagueID:  ros.LeagueID,
		Round:     ros.Round,
		Breakdown: make([]SlotScore, 0, len(roster.Slots())),
	}

	total := 0.0
	for _, slot := range roster.Slots() {
		entry := ros.Entry(slot)
		if entry.PlayerKey == nil || *entry.PlayerKey == "" {
			continue
		}

		base := basePoints[*entry.PlayerKey]
		final := base * float64(entry.WeeksHeld)
		scored.Breakdown = append(scored.Breakdown, SlotScore{
			Slot:        slot,
			PlayerKey:   *entry.PlayerKey,
			BasePoints:  base,
			Multiplier:  entry.WeeksHeld,
			FinalPoints: final,
		})
		total += final
	}

	scored.TotalPoints = math.Round(total*100) / 100
	return scored
}
