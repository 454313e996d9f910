package store

import (
	"context"
	"fmt"
)

// OrderCounts reports how many orders and order items exist.
func (s *Store) OrderCounts(ctx context.Context) (orders, items int64, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orders); err != nil {
		return 0, 0, fmt.Errorf("store: count orders: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM order_items`).Scan(&items); err != nil {
		return 0, 0, fmt.Errorf("store: count order items: %w", err)
	}
	return orders, items, nil
}

// ClearOrderHistory removes all orders and order items in one transaction,
// leaving users and medicines untouched. Items go first because of the
// foreign key on order_id.
func (s *Store) ClearOrderHistory(ctx context.Context) (orders, items int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM order_items`)
	if err != nil {
		return 0, 0, fmt.Errorf("store: delete order items: %w", err)
	}
	items, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, `DELETE FROM orders`)
	if err != nil {
		return 0, 0, fmt.Errorf("store: delete orders: %w", err)
	}
	orders, _ = res.RowsAffected()

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("store: commit: %w", err)
	}
	return orders, items, nil
}
