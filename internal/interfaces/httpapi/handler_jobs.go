package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

type internalSyncRequest struct {
	Round  string `json:"round"`
	GameID string `json:"gameId"`
}

type internalBackfillRequest struct {
	Through string `json:"through"`
}

func (h *Handler) RunSyncScoresJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncScoresJob")
	defer span.End()

	var req internalSyncRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rd, err := h.resolveJobRound(ctx, req.Round)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.SyncScores(ctx, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "sync scores job failed", "round", string(rd), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunSyncGameJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncGameJob")
	defer span.End()

	var req internalSyncRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if strings.TrimSpace(req.GameID) == "" {
		writeError(ctx, w, fmt.Errorf("%w: gameId is required", usecase.ErrInvalidInput))
		return
	}

	rd, err := h.resolveJobRound(ctx, req.Round)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.SyncGame(ctx, req.GameID, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "sync game job failed", "game_id", req.GameID, "round", string(rd), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunAdvanceRoundJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAdvanceRoundJob")
	defer span.End()

	result, err := h.advanceService.Advance(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "advance round job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunBackfillScoresJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunBackfillScoresJob")
	defer span.End()

	var req internalBackfillRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rd, err := h.resolveJobRound(ctx, req.Through)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.Backfill(ctx, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "backfill scores job failed", "through", string(rd), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// resolveJobRound parses an explicit round from a job payload, falling
// back to the active round when the payload omits it.
func (h *Handler) resolveJobRound(ctx context.Context, raw string) (round.Round, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return h.roundService.CurrentRound(ctx)
	}

	rd, err := round.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return rd, nil
}
