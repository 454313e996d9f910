package store

import (
	"context"
	"fmt"
)

type Column struct {
	Name       string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// Tables lists user tables, skipping SQLite internals.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list tables: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: scan table name: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// TableColumns describes a table via PRAGMA table_info.
func (s *Store) TableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, fmt.Errorf("store: table_info %s: %w", table, err)
	}
	defer rows.Close()

	var out []Column
	for rows.Next() {
		var (
			cid          int
			c            Column
			notNull, pk  int
			defaultValue any
		)
		if err := rows.Scan(&cid, &c.Name, &c.Type, &notNull, &defaultValue, &pk); err != nil {
			return nil, fmt.Errorf("store: scan column: %w", err)
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0
		out = append(out, c)
	}
	return out, rows.Err()
}
