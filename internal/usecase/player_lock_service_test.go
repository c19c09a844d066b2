package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
)

func newLockFixture(now time.Time, games []schedule.Game, rosters ...roster.Roster) *PlayerLockService {
	svc := NewPlayerLockService(newMemScheduleRepo(games...), newMemRosterRepo(rosters...), nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPlayerLock_LocksExactlyAtKickoff(t *testing.T) {
	kickoff := time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)
	svc := newLockFixture(kickoff, []schedule.Game{
		{ESPNGameID: "g1", Round: round.WildCard, HomeTeam: "BUF", AwayTeam: "DEN", KickoffAt: kickoff, Status: schedule.StatusScheduled},
	})

	status, err := svc.PlayerLock(context.Background(), "J.Allen-BUF-QB", round.WildCard)
	if err != nil {
		t.Fatalf("PlayerLock error: %v", err)
	}
	if !status.Locked {
		t.Fatalf("expected lock at the kickoff instant")
	}
}

func TestPlayerLock_DefenseKey(t *testing.T) {
	kickoff := time.Date(2026, time.January, 11, 18, 0, 0, 0, time.UTC)
	svc := newLockFixture(kickoff.Add(time.Hour), []schedule.Game{
		{ESPNGameID: "g3", Round: round.WildCard, HomeTeam: "PHI", AwayTeam: "GB", KickoffAt: kickoff, Status: schedule.StatusFinal},
	})

	status, err := svc.PlayerLock(context.Background(), "PHI-DST", round.WildCard)
	if err != nil {
		t.Fatalf("PlayerLock error: %v", err)
	}
	if !status.Locked {
		t.Fatalf("expected defense to be locked after kickoff")
	}
}

func TestPlayerLock_InvalidKey(t *testing.T) {
	svc := newLockFixture(time.Now(), nil)

	if _, err := svc.PlayerLock(context.Background(), "", round.WildCard); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty key, got %v", err)
	}
	if _, err := svc.PlayerLock(context.Background(), "garbage", round.WildCard); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed key, got %v", err)
	}
}

func TestRosterLocks_FilledSlotsOnly(t *testing.T) {
	kickoff := time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)
	svc := newLockFixture(kickoff.Add(time.Hour), []schedule.Game{
		{ESPNGameID: "g1", Round: round.WildCard, HomeTeam: "BUF", AwayTeam: "DEN", KickoffAt: kickoff, Status: schedule.StatusInProgress},
		{ESPNGameID: "g2", Round: round.WildCard, HomeTeam: "PHI", AwayTeam: "GB", KickoffAt: kickoff.Add(4 * time.Hour), Status: schedule.StatusScheduled},
	}, roster.Roster{
		UserID:   "u1",
		LeagueID: "l1",
		Round:    round.WildCard,
		QB:       roster.Entry{PlayerKey: strPtr("J.Allen-BUF-QB"), WeeksHeld: 1},
		RB1:      roster.Entry{PlayerKey: strPtr("S.Barkley-PHI-RB"), WeeksHeld: 1},
	})

	locks, err := svc.RosterLocks(context.Background(), "u1", "l1", round.WildCard)
	if err != nil {
		t.Fatalf("RosterLocks error: %v", err)
	}
	if len(locks) != 2 {
		t.Fatalf("expected locks for the 2 filled slots, got %d", len(locks))
	}
	if !locks[roster.SlotQB].Locked {
		t.Fatalf("expected QB locked after kickoff")
	}
	if locks[roster.SlotRB1].Locked {
		t.Fatalf("expected RB1 unlocked before its kickoff")
	}
}

func TestRosterLocks_MissingRoster(t *testing.T) {
	svc := newLockFixture(time.Now(), nil)

	if _, err := svc.RosterLocks(context.Background(), "nobody", "l1", round.WildCard); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
