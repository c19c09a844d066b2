package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
)

type stubLeagueRepo struct {
	leagues map[string]league.League
}

func (r stubLeagueRepo) List(_ context.Context) ([]league.League, error) {
	var out []league.League
	for _, lg := range r.leagues {
		out = append(out, lg)
	}
	return out, nil
}

func (r stubLeagueRepo) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	lg, ok := r.leagues[leagueID]
	return lg, ok, nil
}

func seedScores(t *testing.T, repo *memScoreRepo, r round.Round) {
	t.Helper()

	yards := func(v float64) *float64 { return &v }
	scores := []scoring.PlayerScore{
		{
			PlayerKey: "J.Allen-BUF-QB",
			Round:     r,
			Stats: scoring.PlayerStats{
				PassingYards:      yards(250),
				PassingTouchdowns: yards(2),
				Interceptions:     yards(1),
			},
		},
		{
			PlayerKey: "C.McCaffrey-SF-RB",
			Round:     r,
			Stats: scoring.PlayerStats{
				RushingYards: yards(100),
				Receptions:   yards(5),
			},
		},
	}
	for _, score := range scores {
		if err := repo.UpsertScore(context.Background(), score); err != nil {
			t.Fatalf("seed score: %v", err)
		}
	}
}

func TestLeaderboardService_RanksWithMultipliers(t *testing.T) {
	t.Parallel()

	leagueRepo := stubLeagueRepo{leagues: map[string]league.League{
		"l1": {ID: "l1", Name: "Office Pool", Format: scoring.FormatPPR},
	}}
	scoreRepo := newMemScoreRepo()
	seedScores(t, scoreRepo, round.WildCard)

	rosterRepo := newMemRosterRepo(
		roster.Roster{
			UserID:   "alice",
			LeagueID: "l1",
			Round:    round.WildCard,
			QB:       roster.Entry{PlayerKey: strPtr("J.Allen-BUF-QB"), WeeksHeld: 2},
		},
		roster.Roster{
			UserID:   "bob",
			LeagueID: "l1",
			Round:    round.WildCard,
			RB1:      roster.Entry{PlayerKey: strPtr("C.McCaffrey-SF-RB"), WeeksHeld: 1},
		},
		roster.Roster{
			UserID:   "carol",
			LeagueID: "l1",
			Round:    round.WildCard,
			QB:       roster.Entry{PlayerKey: strPtr("J.Allen-BUF-QB"), WeeksHeld: 2},
		},
	)

	svc := NewLeaderboardService(leagueRepo, rosterRepo, scoreRepo, nil)

	entries, err := svc.Leaderboard(context.Background(), "l1", round.WildCard)
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("unexpected entry count: got=%d want=3", len(entries))
	}

	// Allen: 16 base * 2 = 32 for alice and carol; McCaffrey: 15 * 1 for bob.
	if entries[0].UserID != "alice" || entries[0].TotalPoints != 32 || entries[0].Rank != 1 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].UserID != "carol" || entries[1].Rank != 1 {
		t.Fatalf("tied totals must share a dense rank: %+v", entries[1])
	}
	if entries[2].UserID != "bob" || entries[2].TotalPoints != 15 || entries[2].Rank != 2 {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
}

func TestLeaderboardService_RecomputesUnderLeagueFormat(t *testing.T) {
	t.Parallel()

	leagueRepo := stubLeagueRepo{leagues: map[string]league.League{
		"std": {ID: "std", Name: "Standard League", Format: scoring.FormatStandard},
	}}
	scoreRepo := newMemScoreRepo()
	seedScores(t, scoreRepo, round.WildCard)

	rosterRepo := newMemRosterRepo(roster.Roster{
		UserID:   "bob",
		LeagueID: "std",
		Round:    round.WildCard,
		RB1:      roster.Entry{PlayerKey: strPtr("C.McCaffrey-SF-RB"), WeeksHeld: 1},
	})

	svc := NewLeaderboardService(leagueRepo, rosterRepo, scoreRepo, nil)

	entries, err := svc.Leaderboard(context.Background(), "std", round.WildCard)
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	// Receptions are worth nothing in a STANDARD league: 100/10 = 10.
	if entries[0].TotalPoints != 10 {
		t.Fatalf("expected standard-format recompute: got=%v want=10", entries[0].TotalPoints)
	}
}

func TestLeaderboardService_ScoreRosterBreakdown(t *testing.T) {
	t.Parallel()

	leagueRepo := stubLeagueRepo{leagues: map[string]league.League{
		"l1": {ID: "l1", Name: "Office Pool", Format: scoring.FormatPPR},
	}}
	scoreRepo := newMemScoreRepo()
	seedScores(t, scoreRepo, round.WildCard)

	rosterRepo := newMemRosterRepo(roster.Roster{
		UserID:   "alice",
		LeagueID: "l1",
		Round:    round.WildCard,
		QB:       roster.Entry{PlayerKey: strPtr("J.Allen-BUF-QB"), WeeksHeld: 3},
		RB1:      roster.Entry{PlayerKey: strPtr("C.McCaffrey-SF-RB"), WeeksHeld: 1},
		RB2:      roster.Entry{PlayerKey: strPtr("D.Henry-BAL-RB"), WeeksHeld: 1},
	})

	svc := NewLeaderboardService(leagueRepo, rosterRepo, scoreRepo, nil)

	scored, err := svc.ScoreRoster(context.Background(), "l1", "alice", round.WildCard)
	if err != nil {
		t.Fatalf("ScoreRoster error: %v", err)
	}

	// QB 16*3 + RB1 15*1 + RB2 without a synced score contributes 0.
	if scored.TotalPoints != 63 {
		t.Fatalf("unexpected total: got=%v want=63", scored.TotalPoints)
	}
	if len(scored.Breakdown) != 3 {
		t.Fatalf("unexpected breakdown size: got=%d want=3", len(scored.Breakdown))
	}
	if scored.Breakdown[0].Slot != roster.SlotQB || scored.Breakdown[0].FinalPoints != 48 {
		t.Fatalf("unexpected QB line: %+v", scored.Breakdown[0])
	}
}

func TestLeaderboardService_UnknownLeague(t *testing.T) {
	t.Parallel()

	svc := NewLeaderboardService(stubLeagueRepo{leagues: map[string]league.League{}}, newMemRosterRepo(), newMemScoreRepo(), nil)

	if _, err := svc.Leaderboard(context.Background(), "ghost", round.WildCard); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestPlayerLockService_Locks(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 1, 11, 18, 0, 0, 0, time.UTC)
	scheduleRepo := newMemScheduleRepo(schedule.Game{
		ESPNGameID: "g1",
		Round:      round.WildCard,
		HomeTeam:   "BUF",
		AwayTeam:   "KC",
		KickoffAt:  kickoff,
		Status:     schedule.StatusScheduled,
	})
	rosterRepo := newMemRosterRepo(roster.Roster{
		UserID:   "alice",
		LeagueID: "l1",
		Round:    round.WildCard,
		QB:       roster.Entry{PlayerKey: strPtr("J.Allen-BUF-QB"), WeeksHeld: 1},
		WR1:      roster.Entry{PlayerKey: strPtr("J.Chase-CIN-WR"), WeeksHeld: 1},
	})

	svc := NewPlayerLockService(scheduleRepo, rosterRepo, nil)
	svc.now = func() time.Time { return kickoff.Add(-time.Hour) }

	status, err := svc.PlayerLock(context.Background(), "J.Allen-BUF-QB", round.WildCard)
	if err != nil {
		t.Fatalf("PlayerLock error: %v", err)
	}
	if status.Locked {
		t.Fatalf("player must stay unlocked before kickoff")
	}
	if status.TimeUntilLock == nil || *status.TimeUntilLock != time.Hour {
		t.Fatalf("unexpected time until lock: %v", status.TimeUntilLock)
	}

	svc.now = func() time.Time { return kickoff.Add(time.Minute) }
	status, err = svc.PlayerLock(context.Background(), "J.Allen-BUF-QB", round.WildCard)
	if err != nil {
		t.Fatalf("PlayerLock error: %v", err)
	}
	if !status.Locked {
		t.Fatalf("player must lock at kickoff")
	}

	// A player without a scheduled game this round stays unlocked.
	status, err = svc.PlayerLock(context.Background(), "J.Chase-CIN-WR", round.WildCard)
	if err != nil {
		t.Fatalf("PlayerLock error: %v", err)
	}
	if status.Locked || status.KickoffAt != nil {
		t.Fatalf("unscheduled team must stay unlocked: %+v", status)
	}

	locks, err := svc.RosterLocks(context.Background(), "alice", "l1", round.WildCard)
	if err != nil {
		t.Fatalf("RosterLocks error: %v", err)
	}
	if len(locks) != 2 {
		t.Fatalf("unexpected lock count: got=%d want=2", len(locks))
	}
	if !locks[roster.SlotQB].Locked {
		t.Fatalf("QB slot must be locked after kickoff")
	}
}
