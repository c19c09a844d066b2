package usecase

import (
	"context"
	"fmt"

	"github.com/gridpool/playoff-pool/internal/domain/appsettings"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/platform/cache"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
)

const currentRoundCacheKey = "settings:current_round"

// RoundService owns the persisted "current round" value. Reads go through
// a short-TTL cache so polling endpoints and scheduled jobs do not hammer
// the settings table; writes go straight to storage and invalidate.
type RoundService struct {
	settingsRepo appsettings.Repository
	cache        *cache.Store
	logger       *logging.Logger
}

func NewRoundService(settingsRepo appsettings.Repository, cacheStore *cache.Store, logger *logging.Logger) *RoundService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RoundService{
		settingsRepo: settingsRepo,
		cache:        cacheStore,
		logger:       logger,
	}
}

// CurrentRound resolves the active playoff round. A missing settings row
// defaults to the Wild Card round without writing it back.
func (s *RoundService) CurrentRound(ctx context.Context) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.CurrentRound")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		value, ok, err := s.settingsRepo.Get(ctx, appsettings.KeyCurrentRound)
		if err != nil {
			return nil, fmt.Errorf("read current round setting: %w", err)
		}
		if !ok {
			return round.WildCard, nil
		}

		parsed, err := round.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("stored current round is invalid: %w", err)
		}
		return parsed, nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return "", err
		}
		return value.(round.Round), nil
	}

	value, err := s.cache.GetOrLoad(ctx, currentRoundCacheKey, load)
	if err != nil {
		return "", err
	}

	return value.(round.Round), nil
}

// SetCurrentRound persists a new active round and drops the cached value.
func (s *RoundService) SetCurrentRound(ctx context.Context, r round.Round) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.SetCurrentRound")
	defer span.End()

	if _, err := round.Parse(string(r)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Set(ctx, appsettings.KeyCurrentRound, string(r)); err != nil {
		return fmt.Errorf("persist current round: %w", err)
	}
	s.InvalidateCurrentRound(ctx)

	s.logger.InfoContext(ctx, "current round updated", "round", string(r))
	return nil
}

// InvalidateCurrentRound drops the cached round so the next read hits
// storage. Safe to call when no cache is configured.
func (s *RoundService) InvalidateCurrentRound(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, currentRoundCacheKey)
	}
}

// ListSettings returns the raw application settings map for admin
// tooling.
func (s *RoundService) ListSettings(ctx context.Context) (map[string]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.ListSettings")
	defer span.End()

	settings, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list app settings: %w", err)
	}
	return settings, nil
}
