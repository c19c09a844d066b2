package httpapi

import (
	"net/http"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	rd, err := h.roundFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	entries, err := h.leaderboardService.Leaderboard(ctx, leagueID, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "league_id", leagueID, "round", string(rd), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) GetRosterScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterScore")
	defer span.End()

	rd, err := h.roundFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	userID := r.PathValue("userID")
	score, err := h.leaderboardService.ScoreRoster(ctx, leagueID, userID, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster score failed",
			"league_id", leagueID,
			"user_id", userID,
			"round", string(rd),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, score)
}

func (h *Handler) GetRosterLocks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterLocks")
	defer span.End()

	rd, err := h.roundFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	userID := r.PathValue("userID")
	locks, err := h.lockService.RosterLocks(ctx, userID, leagueID, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster locks failed",
			"league_id", leagueID,
			"user_id", userID,
			"round", string(rd),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterLocksToDTO(userID, leagueID, string(rd), locks))
}

func (h *Handler) GetPlayerLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerLock")
	defer span.End()

	rd, err := h.roundFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerKey := r.PathValue("playerKey")
	status, err := h.lockService.PlayerLock(ctx, playerKey, rd)
	if err != nil {
		h.logger.WarnContext(ctx, "get player lock failed", "player_key", playerKey, "round", string(rd), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockStatusToDTO(status))
}
