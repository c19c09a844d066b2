package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/gridpool/playoff-pool/internal/platform/querybuilder"
)

type AppSettingsRepository struct {
	db *sqlx.DB
}

func NewAppSettingsRepository(db *sqlx.DB) *AppSettingsRepository {
	return &AppSettingsRepository{db: db}
}

func (r *AppSettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := qb.Select("value").
		From("app_settings").
		Where(qb.Eq("key", key)).
		ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build get app setting query: %w", err)
	}

	var value string
	if err := r.db.GetContext(ctx, &value, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get app setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *AppSettingsRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := qb.InsertModel(
		"app_settings",
		appSettingInsertModel{Key: key, Value: value},
		"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()",
	)
	if err != nil {
		return fmt.Errorf("build upsert app setting query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert app setting %s: %w", key, err)
	}
	return nil
}

func (r *AppSettingsRepository) List(ctx context.Context) (map[string]string, error) {
	query, args, err := qb.Select("*").
		From("app_settings").
		OrderBy("key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list app settings query: %w", err)
	}

	var rows []appSettingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list app settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}
