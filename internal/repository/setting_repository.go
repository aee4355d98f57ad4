package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// SettingRepo manages the site_settings key-value table.  Writes always
// upsert by config_key.
type SettingRepo struct{ db *sql.DB }

func NewSettingRepo(db *sql.DB) *SettingRepo { return &SettingRepo{db: db} }

// List returns every setting ordered by key.
func (r *SettingRepo) List(ctx context.Context) ([]model.SiteSetting, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, config_key, config_value, updated_at FROM site_settings ORDER BY config_key")
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.SiteSetting{}
	for rows.Next() {
		var s model.SiteSetting
		if err := rows.Scan(&s.ID, &s.ConfigKey, &s.ConfigValue, &s.UpdatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, s)
	}
	return out, translate(rows.Err())
}

// Get fetches one setting by key.
func (r *SettingRepo) Get(ctx context.Context, key string) (model.SiteSetting, error) {
	var s model.SiteSetting
	err := r.db.QueryRowContext(ctx,
		"SELECT id, config_key, config_value, updated_at FROM site_settings WHERE config_key = ? LIMIT 1",
		key).Scan(&s.ID, &s.ConfigKey, &s.ConfigValue, &s.UpdatedAt)
	return s, translate(err)
}

// Upsert inserts the key or updates its value when it already exists.
func (r *SettingRepo) Upsert(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO site_settings (config_key, config_value) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE config_value = VALUES(config_value)`,
		key, value)
	return translate(err)
}

// Delete removes a setting by key.
func (r *SettingRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM site_settings WHERE config_key = ?", key)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
