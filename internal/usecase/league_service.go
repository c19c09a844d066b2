package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
)

type LeagueService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
}

func NewLeagueService(leagueRepo league.Repository, playerRepo player.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return lg, nil
}

// LeagueSettings resolves the league's effective scoring table, defaults
// merged with any commissioner override.
func (s *LeagueService) LeagueSettings(ctx context.Context, leagueID string) (scoring.Settings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.LeagueSettings")
	defer span.End()

	lg, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return scoring.Settings{}, err
	}

	return lg.Settings(), nil
}

func (s *LeagueService) ListPlayerPool(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListPlayerPool")
	defer span.End()

	players, err := s.playerRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}

	return players, nil
}
