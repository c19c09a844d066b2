package postgres

import (
	"time"
)

type playerScoreTableModel struct {
	ID           int64      `db:"id"`
	PlayerKey    string     `db:"player_key"`
	ESPNGameID   string     `db:"espn_game_id"`
	Round        string     `db:"round"`
	Points       float64    `db:"points"`
	Stats        []byte     `db:"stats"`
	LastSyncedAt time.Time  `db:"last_synced_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerScoreInsertModel struct {
	PlayerKey    string    `db:"player_key"`
	ESPNGameID   string    `db:"espn_game_id"`
	Round        string    `db:"round"`
	Points       float64   `db:"points"`
	Stats        []byte    `db:"stats"`
	LastSyncedAt time.Time `db:"last_synced_at"`
}

type rosterTableModel struct {
	ID           int64      `db:"id"`
	UserID       string     `db:"user_id"`
	LeagueID     string     `db:"league_public_id"`
	Round        string     `db:"round"`
	QBPlayerKey  *string    `db:"qb_player_key"`
	QBWeeksHeld  int        `db:"qb_weeks_held"`
	RB1PlayerKey *string    `db:"rb1_player_key"`
	RB1WeeksHeld int        `db:"rb1_weeks_held"`
	RB2PlayerKey *string    `db:"rb2_player_key"`
	RB2WeeksHeld int        `db:"rb2_weeks_held"`
	WR1PlayerKey *string    `db:"wr1_player_key"`
	WR1WeeksHeld int        `db:"wr1_weeks_held"`
	WR2PlayerKey *string    `db:"wr2_player_key"`
	WR2WeeksHeld int        `db:"wr2_weeks_held"`
	TEPlayerKey  *string    `db:"te_player_key"`
	TEWeeksHeld  int        `db:"te_weeks_held"`
	KPlayerKey   *string    `db:"k_player_key"`
	KWeeksHeld   int        `db:"k_weeks_held"`
	DSTPlayerKey *string    `db:"dst_player_key"`
	DSTWeeksHeld int        `db:"dst_weeks_held"`
	SubmittedAt  *time.Time `db:"submitted_at"`
	IsFinal      bool       `db:"is_final"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type rosterInsertModel struct {
	UserID       string     `db:"user_id"`
	LeagueID     string     `db:"league_public_id"`
	Round        string     `db:"round"`
	QBPlayerKey  *string    `db:"qb_player_key"`
	QBWeeksHeld  int        `db:"qb_weeks_held"`
	RB1PlayerKey *string    `db:"rb1_player_key"`
	RB1WeeksHeld int        `db:"rb1_weeks_held"`
	RB2PlayerKey *string    `db:"rb2_player_key"`
	RB2WeeksHeld int        `db:"rb2_weeks_held"`
	WR1PlayerKey *string    `db:"wr1_player_key"`
	WR1WeeksHeld int        `db:"wr1_weeks_held"`
	WR2PlayerKey *string    `db:"wr2_player_key"`
	WR2WeeksHeld int        `db:"wr2_weeks_held"`
	TEPlayerKey  *string    `db:"te_player_key"`
	TEWeeksHeld  int        `db:"te_weeks_held"`
	KPlayerKey   *string    `db:"k_player_key"`
	KWeeksHeld   int        `db:"k_weeks_held"`
	DSTPlayerKey *string    `db:"dst_player_key"`
	DSTWeeksHeld int        `db:"dst_weeks_held"`
	SubmittedAt  *time.Time `db:"submitted_at"`
	IsFinal      bool       `db:"is_final"`
}

type scheduleTableModel struct {
	ID         int64      `db:"id"`
	ESPNGameID string     `db:"espn_game_id"`
	Round      string     `db:"round"`
	HomeTeam   string     `db:"home_team"`
	AwayTeam   string     `db:"away_team"`
	KickoffAt  time.Time  `db:"kickoff_time"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type playerPoolTableModel struct {
	ID        int64      `db:"id"`
	PlayerKey string     `db:"player_key"`
	ESPNID    string     `db:"espn_id"`
	FullName  string     `db:"full_name"`
	Team      string     `db:"team"`
	Position  string     `db:"position"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type leagueTableModel struct {
	ID              int64      `db:"id"`
	PublicID        string     `db:"public_id"`
	Name            string     `db:"name"`
	JoinCode        string     `db:"join_code"`
	ScoringFormat   string     `db:"scoring_format"`
	ScoringSettings []byte     `db:"scoring_settings"`
	CommissionerID  string     `db:"commissioner_id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type appSettingTableModel struct {
	ID        int64     `db:"id"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type appSettingInsertModel struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}
