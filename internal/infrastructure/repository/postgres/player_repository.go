package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridpool/playoff-pool/internal/domain/player"
	qb "github.com/gridpool/playoff-pool/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListActive(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").
		From("player_pool").
		Where(
			qb.Eq("is_active", true),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active players query: %w", err)
	}

	var rows []playerPoolTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPlayerRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByKey(ctx context.Context, key string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").
		From("player_pool").
		Where(
			qb.Eq("player_key", key),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerPoolTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return mapPlayerRow(row), true, nil
}

func mapPlayerRow(row playerPoolTableModel) player.Player {
	return player.Player{
		Key:      row.PlayerKey,
		ESPNID:   row.ESPNID,
		FullName: row.FullName,
		Team:     row.Team,
		Position: player.Position(row.Position),
		IsActive: row.IsActive,
	}
}
