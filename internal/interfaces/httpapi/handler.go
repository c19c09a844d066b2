package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

type Handler struct {
	leagueService      *usecase.LeagueService
	roundService       *usecase.RoundService
	leaderboardService *usecase.LeaderboardService
	lockService        *usecase.PlayerLockService
	syncService        *usecase.ScoreSyncService
	advanceService     *usecase.RoundAdvanceService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	roundService *usecase.RoundService,
	leaderboardService *usecase.LeaderboardService,
	lockService *usecase.PlayerLockService,
	syncService *usecase.ScoreSyncService,
	advanceService *usecase.RoundAdvanceService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:      leagueService,
		roundService:       roundService,
		leaderboardService: leaderboardService,
		lockService:        lockService,
		syncService:        syncService,
		advanceService:     advanceService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, lg := range leagues {
		items = append(items, leagueToDTO(lg))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	lg, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := leagueToDTO(lg)
	settings := lg.Settings()
	dto.ScoringSettings = &settings

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) ListPlayerPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPool")
	defer span.End()

	players, err := h.leagueService.ListPlayerPool(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list player pool failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSONBody tolerates an empty body so trigger endpoints can be
// called without a payload.
func decodeJSONBody(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func leagueToDTO(lg league.League) leagueDTO {
	return leagueDTO{
		ID:             lg.ID,
		Name:           lg.Name,
		JoinCode:       lg.JoinCode,
		ScoringFormat:  string(lg.Format),
		CommissionerID: lg.CommissionerID,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		Key:      p.Key,
		ESPNID:   p.ESPNID,
		FullName: p.FullName,
		Team:     p.Team,
		Position: string(p.Position),
	}
}
