package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

type User struct {
	ID          int64
	TelegramID  int64
	Username    string
	FirstName   string
	LastName    string
	Role        string
	CompanyName string
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// staff checks include admins, matching the bot's permission model
func (u *User) IsStaff() bool { return u.Role == RoleStaff || u.Role == RoleAdmin }

// UserByTelegramID returns the user with the given Telegram id, or nil when
// the bot has never seen them.
func (s *Store) UserByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, telegram_id, COALESCE(username, ''), COALESCE(first_name, ''),
		       COALESCE(last_name, ''), role, COALESCE(company_name, '')
		FROM users WHERE telegram_id = ?`, telegramID).
		Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.Role, &u.CompanyName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: user %d: %w", telegramID, err)
	}
	return &u, nil
}

// SetUserRole changes a user's role so the configured admin id can actually
// act as admin once it is written to the settings file.
func (s *Store) SetUserRole(ctx context.Context, telegramID int64, role string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET role = ?, last_active = CURRENT_TIMESTAMP WHERE telegram_id = ?`,
		role, telegramID)
	if err != nil {
		return fmt.Errorf("store: set role for %d: %w", telegramID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("store: no user with telegram id %d", telegramID)
	}
	return nil
}
