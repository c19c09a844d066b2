package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
)

type stubGameProvider struct {
	mu       sync.Mutex
	games    []ExternalGame
	boxes    map[string]ExternalBoxScore
	listErr  error
	boxErrs  map[string]error
	listHits int
}

func (p *stubGameProvider) ListScoreboardGames(_ context.Context) ([]ExternalGame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listHits++
	if p.listErr != nil {
		return nil, p.listErr
	}
	return p.games, nil
}

func (p *stubGameProvider) FetchBoxScore(_ context.Context, gameID string) (ExternalBoxScore, error) {
	if err, ok := p.boxErrs[gameID]; ok {
		return ExternalBoxScore{}, err
	}
	box, ok := p.boxes[gameID]
	if !ok {
		return ExternalBoxScore{}, fmt.Errorf("no box score for game %s", gameID)
	}
	return box, nil
}

type stubSyncPlayerRepo struct {
	players []player.Player
}

func (r stubSyncPlayerRepo) ListActive(_ context.Context) ([]player.Player, error) {
	return r.players, nil
}

func (r stubSyncPlayerRepo) GetByKey(_ context.Context, key string) (player.Player, bool, error) {
	for _, p := range r.players {
		if p.Key == key {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

type memScoreRepo struct {
	mu      sync.Mutex
	scores  map[string]scoring.PlayerScore
	upserts int
}

func newMemScoreRepo() *memScoreRepo {
	return &memScoreRepo{scores: make(map[string]scoring.PlayerScore)}
}

func scoreKey(playerKey string, r round.Round) string {
	return playerKey + "|" + string(r)
}

func (m *memScoreRepo) UpsertScore(_ context.Context, score scoring.PlayerScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	m.scores[scoreKey(score.PlayerKey, score.Round)] = score
	return nil
}

func (m *memScoreRepo) GetScore(_ context.Context, playerKey string, r round.Round) (scoring.PlayerScore, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	score, ok := m.scores[scoreKey(playerKey, r)]
	return score, ok, nil
}

func (m *memScoreRepo) ListScoresByRound(_ context.Context, r round.Round) ([]scoring.PlayerScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []scoring.PlayerScore
	for _, score := range m.scores {
		if score.Round == r {
			out = append(out, score)
		}
	}
	return out, nil
}

type memScheduleRepo struct {
	mu    sync.Mutex
	games map[string]schedule.Game
}

func newMemScheduleRepo(games ...schedule.Game) *memScheduleRepo {
	repo := &memScheduleRepo{games: make(map[string]schedule.Game)}
	for _, game := range games {
		repo.games[game.ESPNGameID] = game
	}
	return repo
}

func (m *memScheduleRepo) ListByRound(_ context.Context, r round.Round) ([]schedule.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []schedule.Game
	for _, game := range m.games {
		if game.Round == r {
			out = append(out, game)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) GetByESPNGameID(_ context.Context, espnGameID string) (schedule.Game, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	game, ok := m.games[espnGameID]
	return game, ok, nil
}

func (m *memScheduleRepo) GetByTeamAndRound(_ context.Context, team string, r round.Round) (schedule.Game, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, game := range m.games {
		if game.Round == r && (game.HomeTeam == team || game.AwayTeam == team) {
			return game, true, nil
		}
	}
	return schedule.Game{}, false, nil
}

func (m *memScheduleRepo) UpdateStatus(_ context.Context, espnGameID string, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	game, ok := m.games[espnGameID]
	if !ok {
		return fmt.Errorf("game %s not scheduled", espnGameID)
	}
	game.Status = status
	m.games[espnGameID] = game
	return nil
}

func newSyncFixture() (*ScoreSyncService, *stubGameProvider, *memScoreRepo, *memScheduleRepo) {
	provider := &stubGameProvider{
		games: []ExternalGame{
			{ID: "401001", HomeTeam: "BUF", AwayTeam: "KC", State: "post", Completed: true},
		},
		boxes: map[string]ExternalBoxScore{
			"401001": {
				GameID: "401001",
				Teams: []ExternalTeamStats{
					{
						Team: "BUF",
						Groups: []ExternalStatGroup{
							{
								Name:   "passing",
								Labels: []string{"C/ATT", "YDS", "TD", "INT"},
								Athletes: []ExternalAthleteStats{
									{AthleteID: "3918298", Name: "Josh Allen", Values: []string{"25/38", "250", "2", "1"}},
								},
							},
							{
								Name:   "rushing",
								Labels: []string{"CAR", "YDS", "TD"},
								Athletes: []ExternalAthleteStats{
									{AthleteID: "3918298", Name: "Josh Allen", Values: []string{"9", "50", "1"}},
									{AthleteID: "9999999", Name: "Unknown Back", Values: []string{"12", "70", "0"}},
								},
							},
							{
								Name:   "punting",
								Labels: []string{"NO", "YDS"},
								Athletes: []ExternalAthleteStats{
									{AthleteID: "3918298", Name: "Josh Allen", Values: []string{"1", "44"}},
								},
							},
						},
					},
				},
			},
		},
		boxErrs: map[string]error{},
	}

	playerRepo := stubSyncPlayerRepo{players: []player.Player{
		{Key: "J.Allen-BUF-QB", ESPNID: "3918298", FullName: "Josh Allen", Team: "BUF", Position: player.PositionQuarterback, IsActive: true},
	}}

	scoreRepo := newMemScoreRepo()
	scheduleRepo := newMemScheduleRepo(schedule.Game{
		ESPNGameID: "401001",
		Round:      round.WildCard,
		HomeTeam:   "BUF",
		AwayTeam:   "KC",
		Status:     schedule.StatusInProgress,
	})

	svc := NewScoreSyncService(provider, playerRepo, scoreRepo, scheduleRepo, nil, ScoreSyncConfig{Format: scoring.FormatPPR}, nil)
	svc.now = func() time.Time { return time.Date(2026, 1, 11, 21, 0, 0, 0, time.UTC) }
	return svc, provider, scoreRepo, scheduleRepo
}

func TestScoreSyncService_SyncScores_MergesCategoryGroups(t *testing.T) {
	t.Parallel()

	svc, _, scoreRepo, scheduleRepo := newSyncFixture()

	result, err := svc.SyncScores(context.Background(), round.WildCard)
	if err != nil {
		t.Fatalf("SyncScores error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, errors=%v", result.Errors)
	}
	if result.GamesProcessed != 1 {
		t.Fatalf("unexpected games processed: got=%d want=1", result.GamesProcessed)
	}
	// The unknown athlete is skipped silently, so only one player updates.
	if result.PlayersUpdated != 1 {
		t.Fatalf("unexpected players updated: got=%d want=1", result.PlayersUpdated)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	score, ok, err := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.WildCard)
	if err != nil || !ok {
		t.Fatalf("expected stored score: ok=%v err=%v", ok, err)
	}
	// 250/25 + 2*4 - 2 + 50/10 + 6 = 27.00 across the merged groups.
	if score.Points != 27 {
		t.Fatalf("unexpected points: got=%v want=27", score.Points)
	}
	if score.Stats.PassingYards == nil || *score.Stats.PassingYards != 250 {
		t.Fatalf("merged stats lost passing yards: %+v", score.Stats)
	}
	if score.Stats.RushingTouchdowns == nil || *score.Stats.RushingTouchdowns != 1 {
		t.Fatalf("merged stats lost rushing touchdowns: %+v", score.Stats)
	}

	game, ok, _ := scheduleRepo.GetByESPNGameID(context.Background(), "401001")
	if !ok || game.Status != schedule.StatusFinal {
		t.Fatalf("unexpected game status: got=%q want=%q", game.Status, schedule.StatusFinal)
	}
}

func TestScoreSyncService_SyncScores_Idempotent(t *testing.T) {
	t.Parallel()

	svc, _, scoreRepo, _ := newSyncFixture()

	first, err := svc.SyncScores(context.Background(), round.WildCard)
	if err != nil {
		t.Fatalf("first sync error: %v", err)
	}
	score1, _, _ := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.WildCard)

	second, err := svc.SyncScores(context.Background(), round.WildCard)
	if err != nil {
		t.Fatalf("second sync error: %v", err)
	}
	score2, _, _ := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.WildCard)

	if first.PlayersUpdated != second.PlayersUpdated {
		t.Fatalf("sync not idempotent: first=%d second=%d", first.PlayersUpdated, second.PlayersUpdated)
	}
	if len(scoreRepo.scores) != 1 {
		t.Fatalf("expected a single stored row, got=%d", len(scoreRepo.scores))
	}
	if score1.Points != score2.Points {
		t.Fatalf("points drifted across syncs: first=%v second=%v", score1.Points, score2.Points)
	}
}

func TestScoreSyncService_SyncScores_GameFailureIsIsolated(t *testing.T) {
	t.Parallel()

	svc, provider, scoreRepo, _ := newSyncFixture()
	provider.games = append(provider.games, ExternalGame{ID: "401002", State: "in"})
	provider.boxErrs["401002"] = fmt.Errorf("upstream timeout")

	result, err := svc.SyncScores(context.Background(), round.WildCard)
	if err != nil {
		t.Fatalf("SyncScores error: %v", err)
	}

	if !result.Success {
		t.Fatalf("per-game failure must not fail the pass: errors=%v", result.Errors)
	}
	if result.GamesProcessed != 2 {
		t.Fatalf("unexpected games processed: got=%d want=2", result.GamesProcessed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly one recorded error, got=%v", result.Errors)
	}
	if _, ok, _ := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.WildCard); !ok {
		t.Fatalf("healthy game must still be processed")
	}
}

func TestScoreSyncService_SyncScores_ListFailureIsFatal(t *testing.T) {
	t.Parallel()

	svc, provider, _, _ := newSyncFixture()
	provider.listErr = fmt.Errorf("scoreboard unavailable")

	result, err := svc.SyncScores(context.Background(), round.WildCard)
	if err != nil {
		t.Fatalf("SyncScores error: %v", err)
	}
	if result.Success {
		t.Fatalf("expected unsuccessful result when scoreboard listing fails")
	}
	if result.GamesProcessed != 0 {
		t.Fatalf("no games should be processed after a fatal error, got=%d", result.GamesProcessed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected a single top-level error, got=%v", result.Errors)
	}
}

func TestScoreSyncService_SyncGame(t *testing.T) {
	t.Parallel()

	svc, _, scoreRepo, scheduleRepo := newSyncFixture()

	result, err := svc.SyncGame(context.Background(), "401001", round.WildCard)
	if err != nil {
		t.Fatalf("SyncGame error: %v", err)
	}
	if !result.Success || result.PlayersUpdated != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if _, ok, _ := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.WildCard); !ok {
		t.Fatalf("expected stored score after single-game sync")
	}

	// Single-game sync has no scoreboard state, so the stored status is
	// left untouched.
	game, _, _ := scheduleRepo.GetByESPNGameID(context.Background(), "401001")
	if game.Status != schedule.StatusInProgress {
		t.Fatalf("unexpected status change: got=%q", game.Status)
	}

	if _, err := svc.SyncGame(context.Background(), "", round.WildCard); err == nil {
		t.Fatalf("expected invalid input error for empty game id")
	}
}

func TestScoreSyncService_Backfill(t *testing.T) {
	t.Parallel()

	svc, provider, scoreRepo, scheduleRepo := newSyncFixture()

	scheduleRepo.games["401102"] = schedule.Game{
		ESPNGameID: "401102",
		Round:      round.Divisional,
		HomeTeam:   "BUF",
		AwayTeam:   "BAL",
		Status:     schedule.StatusFinal,
	}
	provider.boxes["401102"] = ExternalBoxScore{
		GameID: "401102",
		Teams: []ExternalTeamStats{
			{
				Team: "BUF",
				Groups: []ExternalStatGroup{
					{
						Name:   "passing",
						Labels: []string{"C/ATT", "YDS", "TD", "INT"},
						Athletes: []ExternalAthleteStats{
							{AthleteID: "3918298", Name: "Josh Allen", Values: []string{"30/41", "310", "3", "0"}},
						},
					},
				},
			},
		},
	}

	// Stale wild card row, as if written before a scoring-rule fix.
	if err := scoreRepo.UpsertScore(context.Background(), scoring.PlayerScore{
		PlayerKey: "J.Allen-BUF-QB",
		GameID:    "401102",
		Round:     round.WildCard,
		Points:    99,
	}); err != nil {
		t.Fatalf("seed stale score: %v", err)
	}

	result, err := svc.Backfill(context.Background(), round.Divisional)
	if err != nil {
		t.Fatalf("Backfill error: %v", err)
	}
	if !result.Success {
		t.Fatalf("unexpected backfill failure: %v", result.Errors)
	}
	if len(result.RoundsSynced) != 2 {
		t.Fatalf("unexpected rounds synced: got=%v", result.RoundsSynced)
	}
	if result.RoundsSynced[0] != round.WildCard || result.RoundsSynced[1] != round.Divisional {
		t.Fatalf("rounds out of bracket order: %v", result.RoundsSynced)
	}
	if provider.listHits != 0 {
		t.Fatalf("backfill must replay the stored schedule, not the live scoreboard; got %d listings", provider.listHits)
	}

	// Each round rebuilds from its own scheduled games.
	wc, ok, _ := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.WildCard)
	if !ok {
		t.Fatalf("wild card score missing after backfill")
	}
	if wc.GameID != "401001" {
		t.Fatalf("wild card score rebuilt from wrong game: got=%s want=401001", wc.GameID)
	}
	if wc.Stats.PassingYards == nil || *wc.Stats.PassingYards != 250 {
		t.Fatalf("wild card passing yards not restored from wild card box score: got=%v", wc.Stats.PassingYards)
	}

	div, ok, _ := scoreRepo.GetScore(context.Background(), "J.Allen-BUF-QB", round.Divisional)
	if !ok {
		t.Fatalf("divisional score missing after backfill")
	}
	if div.GameID != "401102" {
		t.Fatalf("divisional score rebuilt from wrong game: got=%s want=401102", div.GameID)
	}
	if div.Stats.PassingYards == nil || *div.Stats.PassingYards != 310 {
		t.Fatalf("divisional passing yards wrong: got=%v", div.Stats.PassingYards)
	}
}
