package store

import (
	"context"
	"fmt"
)

type Medicine struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"therapeutic_category"`
	ManufacturingDate string  `json:"manufacturing_date,omitempty"`
	ExpiringDate      string  `json:"expiring_date,omitempty"`
	DosageForm        string  `json:"dosage_form,omitempty"`
	Price             float64 `json:"price"`
	Stock             int64   `json:"stock_quantity"`
}

// ActiveMedicines returns all active medicines ordered by category, then name.
func (s *Store) ActiveMedicines(ctx context.Context) ([]Medicine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(therapeutic_category, ''),
		       COALESCE(manufacturing_date, ''), COALESCE(expiring_date, ''),
		       COALESCE(dosage_form, ''), price, stock_quantity
		FROM medicines
		WHERE is_active = 1
		ORDER BY therapeutic_category, name`)
	if err != nil {
		return nil, fmt.Errorf("store: list medicines: %w", err)
	}
	defer rows.Close()

	var out []Medicine
	for rows.Next() {
		var m Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Category,
			&m.ManufacturingDate, &m.ExpiringDate, &m.DosageForm,
			&m.Price, &m.Stock); err != nil {
			return nil, fmt.Errorf("store: scan medicine: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpsertMedicine inserts a medicine or, when the name already exists,
// refreshes its details and reactivates it. Bulk import relies on the
// UNIQUE constraint on name.
func (s *Store) UpsertMedicine(ctx context.Context, m Medicine) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO medicines
			(name, therapeutic_category, manufacturing_date, expiring_date,
			 dosage_form, price, stock_quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			therapeutic_category = excluded.therapeutic_category,
			manufacturing_date = excluded.manufacturing_date,
			expiring_date = excluded.expiring_date,
			dosage_form = excluded.dosage_form,
			price = excluded.price,
			stock_quantity = excluded.stock_quantity,
			is_active = 1,
			updated_at = CURRENT_TIMESTAMP`,
		m.Name, m.Category, m.ManufacturingDate, m.ExpiringDate,
		m.DosageForm, m.Price, m.Stock)
	if err != nil {
		return fmt.Errorf("store: upsert medicine %q: %w", m.Name, err)
	}
	return nil
}
