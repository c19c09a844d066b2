package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rosters/{userID}/score", handler.GetRosterScore)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rosters/{userID}/locks", handler.GetRosterLocks)
	mux.HandleFunc("GET /v1/players", handler.ListPlayerPool)
	mux.HandleFunc("GET /v1/players/{playerKey}/lock", handler.GetPlayerLock)
	mux.HandleFunc("GET /v1/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/rounds/current", handler.GetCurrentRound)
	mux.HandleFunc("GET /v1/settings", handler.ListAppSettings)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-scores", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncScoresJob)))
	mux.Handle("POST /v1/internal/jobs/sync-game", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncGameJob)))
	mux.Handle("POST /v1/internal/jobs/advance-round", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAdvanceRoundJob)))
	mux.Handle("POST /v1/internal/jobs/backfill-scores", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunBackfillScoresJob)))
	mux.Handle("PUT /v1/internal/settings/current-round", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.SetCurrentRound)))
}
