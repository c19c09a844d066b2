package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/gridpool/playoff-pool/internal/domain/round"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
	qb "github.com/gridpool/playoff-pool/internal/platform/querybuilder"
)

type PlayerScoreRepository struct {
	db *sqlx.DB
}

func NewPlayerScoreRepository(db *sqlx.DB) *PlayerScoreRepository {
	return &PlayerScoreRepository{db: db}
}

func (r *PlayerScoreRepository) UpsertScore(ctx context.Context, score scoring.PlayerScore) error {
	stats, err := sonic.Marshal(score.Stats)
	if err != nil {
		return fmt.Errorf("encode player stats: %w", err)
	}

	insertModel := playerScoreInsertModel{
		PlayerKey:    score.PlayerKey,
		ESPNGameID:   score.GameID,
		Round:        string(score.Round),
		Points:       score.Points,
		Stats:        stats,
		LastSyncedAt: score.LastSyncedAt,
	}
	query, args, err := qb.InsertModel("player_scores", insertModel, `ON CONFLICT (player_key, round) WHERE deleted_at IS NULL
DO UPDATE SET
    espn_game_id = EXCLUDED.espn_game_id,
    points = EXCLUDED.points,
    stats = EXCLUDED.stats,
    last_synced_at = EXCLUDED.last_synced_at,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert player score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player score: %w", err)
	}
	return nil
}

func (r *PlayerScoreRepository) GetScore(ctx context.Context, playerKey string, rd round.Round) (scoring.PlayerScore, bool, error) {
	query, args, err := qb.Select("*").
		From("player_scores").
		Where(
			qb.Eq("player_key", playerKey),
			qb.Eq("round", string(rd)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scoring.PlayerScore{}, false, fmt.Errorf("build get player score query: %w", err)
	}

	var row playerScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.PlayerScore{}, false, nil
		}
		return scoring.PlayerScore{}, false, fmt.Errorf("get player score: %w", err)
	}

	score, err := mapPlayerScoreRow(row)
	if err != nil {
		return scoring.PlayerScore{}, false, err
	}
	return score, true, nil
}

func (r *PlayerScoreRepository) ListScoresByRound(ctx context.Context, rd round.Round) ([]scoring.PlayerScore, error) {
	query, args, err := qb.Select("*").
		From("player_scores").
		Where(
			qb.Eq("round", string(rd)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player scores query: %w", err)
	}

	var rows []playerScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player scores: %w", err)
	}

	out := make([]scoring.PlayerScore, 0, len(rows))
	for _, row := range rows {
		score, err := mapPlayerScoreRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, nil
}

func mapPlayerScoreRow(row playerScoreTableModel) (scoring.PlayerScore, error) {
	var stats scoring.PlayerStats
	if len(row.Stats) > 0 {
		if err := sonic.Unmarshal(row.Stats, &stats); err != nil {
			return scoring.PlayerScore{}, fmt.Errorf("decode stats for player %s: %w", row.PlayerKey, err)
		}
	}

	return scoring.PlayerScore{
		PlayerKey:    row.PlayerKey,
		GameID:       row.ESPNGameID,
		Round:        round.Round(row.Round),
		Points:       row.Points,
		Stats:        stats,
		LastSyncedAt: row.LastSyncedAt,
	}, nil
}
