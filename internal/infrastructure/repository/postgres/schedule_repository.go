package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	qb "github.com/gridpool/playoff-pool/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListByRound(ctx context.Context, rd round.Round) ([]schedule.Game, error) {
	query, args, err := qb.Select("*").
		From("playoff_schedule").
		Where(
			qb.Eq("round", string(rd)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_time").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schedule query: %w", err)
	}

	var rows []scheduleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}

	out := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapScheduleRow(row))
	}
	return out, nil
}

func (r *ScheduleRepository) GetByESPNGameID(ctx context.Context, espnGameID string) (schedule.Game, bool, error) {
	query, args, err := qb.Select("*").
		From("playoff_schedule").
		Where(
			qb.Eq("espn_game_id", espnGameID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return schedule.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row scheduleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Game{}, false, nil
		}
		return schedule.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	return mapScheduleRow(row), true, nil
}

func (r *ScheduleRepository) GetByTeamAndRound(ctx context.Context, team string, rd round.Round) (schedule.Game, bool, error) {
	query, args, err := qb.Select("*").
		From("playoff_schedule").
		Where(
			qb.Expr("(home_team = ? OR away_team = ?)", team, team),
			qb.Eq("round", string(rd)),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return schedule.Game{}, false, fmt.Errorf("build get game by team query: %w", err)
	}

	var row scheduleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Game{}, false, nil
		}
		return schedule.Game{}, false, fmt.Errorf("get game by team: %w", err)
	}

	return mapScheduleRow(row), true, nil
}

func (r *ScheduleRepository) UpdateStatus(ctx context.Context, espnGameID string, status string) error {
	query, args, err := qb.Update("playoff_schedule").
		Set("status", schedule.NormalizeStatus(status)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("espn_game_id", espnGameID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game status query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update game status: %w", err)
	}
	return nil
}

func mapScheduleRow(row scheduleTableModel) schedule.Game {
	return schedule.Game{
		ESPNGameID: row.ESPNGameID,
		Round:      round.Round(row.Round),
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		KickoffAt:  row.KickoffAt,
		Status:     schedule.NormalizeStatus(row.Status),
	}
}
