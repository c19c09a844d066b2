package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridpool/playoff-pool/internal/infrastructure/repository/memory"
)

// BootstrapSeed populates an empty database with the launch leagues, the
// playoff player pool, and the bracket schedule. It is a no-op when any
// league already exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (public_id, name, join_code, scoring_format, commissioner_id)
VALUES (:public_id, :name, :join_code, :scoring_format, :commissioner_id)
ON CONFLICT DO NOTHING`, map[string]any{
			"public_id":       l.ID,
			"name":            l.Name,
			"join_code":       l.JoinCode,
			"scoring_format":  string(l.Format),
			"commissioner_id": l.CommissionerID,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO player_pool (player_key, espn_id, full_name, team, position, is_active)
VALUES (:player_key, :espn_id, :full_name, :team, :position, :is_active)
ON CONFLICT DO NOTHING`, map[string]any{
			"player_key": p.Key,
			"espn_id":    p.ESPNID,
			"full_name":  p.FullName,
			"team":       p.Team,
			"position":   string(p.Position),
			"is_active":  p.IsActive,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.Key, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.Key, err)
		}
	}

	for _, g := range memory.SeedSchedule() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO playoff_schedule (espn_game_id, round, home_team, away_team, kickoff_time, status)
VALUES (:espn_game_id, :round, :home_team, :away_team, :kickoff_time, :status)
ON CONFLICT DO NOTHING`, map[string]any{
			"espn_game_id": g.ESPNGameID,
			"round":        string(g.Round),
			"home_team":    g.HomeTeam,
			"away_team":    g.AwayTeam,
			"kickoff_time": g.KickoffAt.UTC(),
			"status":       string(g.Status),
		})
		if err != nil {
			return fmt.Errorf("bind seed game %s query: %w", g.ESPNGameID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed game %s: %w", g.ESPNGameID, err)
		}
	}

	for key, value := range memory.SeedAppSettings() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO app_settings (key, value)
VALUES (:key, :value)
ON CONFLICT (key) DO NOTHING`, map[string]any{
			"key":   key,
			"value": value,
		})
		if err != nil {
			return fmt.Errorf("bind seed setting %s query: %w", key, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
