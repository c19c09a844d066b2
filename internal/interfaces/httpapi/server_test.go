package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/gridpool/playoff-pool/internal/infrastructure/repository/memory"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

type emptyGameProvider struct{}

func (emptyGameProvider) ListScoreboardGames(_ context.Context) ([]usecase.ExternalGame, error) {
	return nil, nil
}

func (emptyGameProvider) FetchBoxScore(_ context.Context, gameID string) (usecase.ExternalBoxScore, error) {
	return usecase.ExternalBoxScore{GameID: gameID}, nil
}

func newTestRouter(t *testing.T, internalToken string) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	rosterRepo := memory.NewRosterRepository(memory.SeedRosters())
	scheduleRepo := memory.NewScheduleRepository(memory.SeedSchedule())
	scoreRepo := memory.NewScoreRepository()
	settingsRepo := memory.NewAppSettingsRepository(memory.SeedAppSettings())

	roundSvc := usecase.NewRoundService(settingsRepo, nil, logger)
	leagueSvc := usecase.NewLeagueService(leagueRepo, playerRepo)
	syncSvc := usecase.NewScoreSyncService(emptyGameProvider{}, playerRepo, scoreRepo, scheduleRepo, nil, usecase.ScoreSyncConfig{}, logger)
	advanceSvc := usecase.NewRoundAdvanceService(roundSvc, rosterRepo, scheduleRepo, logger)
	leaderboardSvc := usecase.NewLeaderboardService(leagueRepo, rosterRepo, scoreRepo, logger)
	lockSvc := usecase.NewPlayerLockService(scheduleRepo, rosterRepo, logger)

	handler := NewHandler(leagueSvc, roundSvc, leaderboardSvc, lockSvc, syncSvc, advanceSvc, logger)
	return NewRouter(handler, logger, []string{"*"}, internalToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("X-Internal-Job-Token", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response for %s %s: %v", method, path, err)
	}
	return rec, envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", envelope)
	}
}

func TestRouter_ListLeagues(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items, _ := envelope["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded leagues, got %d", len(items))
	}
}

func TestRouter_GetLeagueIncludesSettings(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDLaunchPool, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["scoringFormat"] != "PPR" {
		t.Fatalf("unexpected scoring format: %v", data["scoringFormat"])
	}
	if _, ok := data["scoringSettings"].(map[string]any); !ok {
		t.Fatalf("expected resolved scoring settings on league detail")
	}
}

func TestRouter_GetLeagueNotFound(t *testing.T) {
	router := newTestRouter(t, "")

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/leagues/ghost-league", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_CurrentRound(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/rounds/current", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["round"] != "WC" {
		t.Fatalf("unexpected current round: %v", data["round"])
	}
}

func TestRouter_PlayerLock(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/players/J.Allen-BUF-QB/lock", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["playerKey"] != "J.Allen-BUF-QB" {
		t.Fatalf("unexpected lock payload: %v", data)
	}
}

func TestRouter_InternalJobsRejectMissingToken(t *testing.T) {
	router := newTestRouter(t, "secret-token")

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync-scores", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync-scores", "wrong-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", rec.Code)
	}
}

func TestRouter_InternalJobsUnavailableWhenTokenUnset(t *testing.T) {
	router := newTestRouter(t, "")

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync-scores", "anything", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when token is not configured, got %d", rec.Code)
	}
}

func TestRouter_InternalSyncJobRunsWithToken(t *testing.T) {
	router := newTestRouter(t, "secret-token")

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sync-scores", "secret-token", `{"round":"WC"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["round"] != "WC" {
		t.Fatalf("unexpected sync result: %v", data)
	}
}

func TestRouter_SetCurrentRoundValidation(t *testing.T) {
	router := newTestRouter(t, "secret-token")

	rec, _ := doRequest(t, router, http.MethodPut, "/v1/internal/settings/current-round", "secret-token", `{"round":"PRESEASON"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown round, got %d", rec.Code)
	}

	rec, envelope := doRequest(t, router, http.MethodPut, "/v1/internal/settings/current-round", "secret-token", `{"round":"DIV"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, envelope)
	}

	_, envelope = doRequest(t, router, http.MethodGet, "/v1/rounds/current", "", "")
	data, _ := envelope["data"].(map[string]any)
	if data["round"] != "DIV" {
		t.Fatalf("expected current round DIV after update, got %v", data["round"])
	}
}

func TestRouter_ListSettings(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/settings", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["current_round"] != "WC" {
		t.Fatalf("unexpected settings payload: %v", data)
	}
}

func TestRouter_Leaderboard(t *testing.T) {
	router := newTestRouter(t, "")

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDLaunchPool+"/leaderboard", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, envelope)
	}
}
