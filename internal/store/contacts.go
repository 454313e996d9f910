package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type ContactSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// HasContactSettings reports whether the contact_settings table exists at
// all; older bot databases predate it.
func (s *Store) HasContactSettings(ctx context.Context) (bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name='contact_settings'`).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("store: check contact_settings: %w", err)
	}
	return true, nil
}

// ContactSettings returns all contact settings in key order.
func (s *Store) ContactSettings(ctx context.Context) ([]ContactSetting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT setting_key, COALESCE(setting_value, '') FROM contact_settings ORDER BY setting_key`)
	if err != nil {
		return nil, fmt.Errorf("store: read contact settings: %w", err)
	}
	defer rows.Close()

	var out []ContactSetting
	for rows.Next() {
		var c ContactSetting
		if err := rows.Scan(&c.Key, &c.Value); err != nil {
			return nil, fmt.Errorf("store: scan contact setting: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetContactSetting creates or replaces one contact setting.
func (s *Store) SetContactSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_settings (setting_key, setting_value)
		VALUES (?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			updated_at = CURRENT_TIMESTAMP`, key, value)
	if err != nil {
		return fmt.Errorf("store: set contact setting %q: %w", key, err)
	}
	return nil
}
