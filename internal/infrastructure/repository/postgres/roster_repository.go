package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/round"
	qb "github.com/gridpool/playoff-pool/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) Get(ctx context.Context, userID, leagueID string, rd round.Round) (roster.Roster, bool, error) {
	query, args, err := qb.Select("*").
		From("rosters").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("league_public_id", leagueID),
			qb.Eq("round", string(rd)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.Roster{}, false, fmt.Errorf("build get roster query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Roster{}, false, nil
		}
		return roster.Roster{}, false, fmt.Errorf("get roster: %w", err)
	}

	return mapRosterRow(row), true, nil
}

func (r *RosterRepository) ListByRound(ctx context.Context, rd round.Round) ([]roster.Roster, error) {
	return r.list(ctx, "", rd)
}

func (r *RosterRepository) ListByLeagueAndRound(ctx context.Context, leagueID string, rd round.Round) ([]roster.Roster, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("league id is required")
	}
	return r.list(ctx, leagueID, rd)
}

func (r *RosterRepository) list(ctx context.Context, leagueID string, rd round.Round) ([]roster.Roster, error) {
	conditions := []qb.Condition{
		qb.Eq("round", string(rd)),
		qb.IsNull("deleted_at"),
	}
	if leagueID != "" {
		conditions = append(conditions, qb.Eq("league_public_id", leagueID))
	}

	query, args, err := qb.Select("*").
		From("rosters").
		Where(conditions...).
		OrderBy("league_public_id", "user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list rosters query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}

	out := make([]roster.Roster, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRosterRow(row))
	}
	return out, nil
}

func (r *RosterRepository) Upsert(ctx context.Context, ros roster.Roster) error {
	insertModel := rosterInsertModel{
		UserID:       ros.UserID,
		LeagueID:     ros.LeagueID,
		Round:        string(ros.Round),
		QBPlayerKey:  ros.QB.PlayerKey,
		QBWeeksHeld:  ros.QB.WeeksHeld,
		RB1PlayerKey: ros.RB1.PlayerKey,
		RB1WeeksHeld: ros.RB1.WeeksHeld,
		RB2PlayerKey: ros.RB2.PlayerKey,
		RB2WeeksHeld: ros.RB2.WeeksHeld,
		WR1PlayerKey: ros.WR1.PlayerKey,
		WR1WeeksHeld: ros.WR1.WeeksHeld,
		WR2PlayerKey: ros.WR2.PlayerKey,
		WR2WeeksHeld: ros.WR2.WeeksHeld,
		TEPlayerKey:  ros.TE.PlayerKey,
		TEWeeksHeld:  ros.TE.WeeksHeld,
		KPlayerKey:   ros.K.PlayerKey,
		KWeeksHeld:   ros.K.WeeksHeld,
		DSTPlayerKey: ros.DST.PlayerKey,
		DSTWeeksHeld: ros.DST.WeeksHeld,
		SubmittedAt:  ros.SubmittedAt,
		IsFinal:      ros.IsFinal,
	}
	query, args, err := qb.InsertModel("rosters", insertModel, `ON CONFLICT (user_id, league_public_id, round) WHERE deleted_at IS NULL
DO UPDATE SET
    qb_player_key = EXCLUDED.qb_player_key,
    qb_weeks_held = EXCLUDED.qb_weeks_held,
    rb1_player_key = EXCLUDED.rb1_player_key,
    rb1_weeks_held = EXCLUDED.rb1_weeks_held,
    rb2_player_key = EXCLUDED.rb2_player_key,
    rb2_weeks_held = EXCLUDED.rb2_weeks_held,
    wr1_player_key = EXCLUDED.wr1_player_key,
    wr1_weeks_held = EXCLUDED.wr1_weeks_held,
    wr2_player_key = EXCLUDED.wr2_player_key,
    wr2_weeks_held = EXCLUDED.wr2_weeks_held,
    te_player_key = EXCLUDED.te_player_key,
    te_weeks_held = EXCLUDED.te_weeks_held,
    k_player_key = EXCLUDED.k_player_key,
    k_weeks_held = EXCLUDED.k_weeks_held,
    dst_player_key = EXCLUDED.dst_player_key,
    dst_weeks_held = EXCLUDED.dst_weeks_held,
    submitted_at = EXCLUDED.submitted_at,
    is_final = EXCLUDED.is_final,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert roster query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert roster: %w", err)
	}
	return nil
}

func mapRosterRow(row rosterTableModel) roster.Roster {
	return roster.Roster{
		UserID:      row.UserID,
		LeagueID:    row.LeagueID,
		Round:       round.Round(row.Round),
		QB:          mapSlot(row.QBPlayerKey, row.QBWeeksHeld),
		RB1:         mapSlot(row.RB1PlayerKey, row.RB1WeeksHeld),
		RB2:         mapSlot(row.RB2PlayerKey, row.RB2WeeksHeld),
		WR1:         mapSlot(row.WR1PlayerKey, row.WR1WeeksHeld),
		WR2:         mapSlot(row.WR2PlayerKey, row.WR2WeeksHeld),
		TE:          mapSlot(row.TEPlayerKey, row.TEWeeksHeld),
		K:           mapSlot(row.KPlayerKey, row.KWeeksHeld),
		DST:         mapSlot(row.DSTPlayerKey, row.DSTWeeksHeld),
		SubmittedAt: row.SubmittedAt,
		IsFinal:     row.IsFinal,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapSlot(playerKey *string, weeksHeld int) roster.Entry {
	if playerKey == nil || *playerKey == "" {
		return roster.EmptyEntry()
	}
	if weeksHeld < roster.MinWeeksHeld {
		weeksHeld = roster.MinWeeksHeld
	}
	if weeksHeld > roster.MaxWeeksHeld {
		weeksHeld = roster.MaxWeeksHeld
	}
	key := *playerKey
	return roster.Entry{PlayerKey: &key, WeeksHeld: weeksHeld}
}
