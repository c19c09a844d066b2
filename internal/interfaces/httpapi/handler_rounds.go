package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

func (h *Handler) GetCurrentRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentRound")
	defer span.End()

	current, err := h.roundService.CurrentRound(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get current round failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentRoundDTO{
		Round: string(current),
		Name:  current.Name(),
	})
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	items := make([]currentRoundDTO, 0, len(round.All()))
	for _, rd := range round.All() {
		items = append(items, currentRoundDTO{Round: string(rd), Name: rd.Name()})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListAppSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAppSettings")
	defer span.End()

	settings, err := h.roundService.ListSettings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list app settings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settings)
}

func (h *Handler) SetCurrentRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCurrentRound")
	defer span.End()

	var req setCurrentRoundRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rd, err := round.Parse(req.Round)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.roundService.SetCurrentRound(ctx, rd); err != nil {
		h.logger.ErrorContext(ctx, "set current round failed", "round", req.Round, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentRoundDTO{Round: string(rd), Name: rd.Name()})
}

// roundFromQuery resolves an optional ?round= parameter, defaulting to
// the active round when absent.
func (h *Handler) roundFromQuery(r *http.Request) (round.Round, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("round"))
	if raw == "" {
		return h.roundService.CurrentRound(r.Context())
	}

	rd, err := round.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return rd, nil
}
