package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
	qb "github.com/gridpool/playoff-pool/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").
		From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		lg, err := mapLeagueRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, lg)
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").
		From("leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	lg, err := mapLeagueRow(row)
	if err != nil {
		return league.League{}, false, err
	}
	return lg, true, nil
}

func mapLeagueRow(row leagueTableModel) (league.League, error) {
	lg := league.League{
		ID:             row.PublicID,
		Name:           row.Name,
		JoinCode:       row.JoinCode,
		Format:         scoring.Format(row.ScoringFormat),
		CommissionerID: row.CommissionerID,
	}
	if len(row.ScoringSettings) > 0 {
		var override scoring.Override
		if err := sonic.Unmarshal(row.ScoringSettings, &override); err != nil {
			return league.League{}, fmt.Errorf("decode league %s scoring settings: %w", row.PublicID, err)
		}
		lg.ScoringOverride = &override
	}
	return lg, nil
}
