package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Assumes the users table from db/migrations:
//   users(id, email UNIQUE NULLS DISTINCT, name, is_guest, pin_hash, created_at, expires_at)

func scanUser(row *sql.Row) (User, error) {
	var u User
	var email sql.NullString
	var expires sql.NullTime
	if err := row.Scan(&u.ID, &email, &u.Name, &u.IsGuest, &u.PINHash, &u.CreatedAt, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.Email = email.String
	if expires.Valid {
		t := expires.Time
		u.ExpiresAt = &t
	}
	return u, nil
}

func findByEmail(ctx context.Context, db *sql.DB, email string) (User, error) {
	const q = `
SELECT id, email, name, is_guest, pin_hash, created_at, expires_at
FROM users
WHERE email = $1
`
	return scanUser(db.QueryRowContext(ctx, q, email))
}

func findByID(ctx context.Context, db *sql.DB, id string) (User, error) {
	const q = `
SELECT id, email, name, is_guest, pin_hash, created_at, expires_at
FROM users
WHERE id = $1
`
	return scanUser(db.QueryRowContext(ctx, q, id))
}

func emailExistsTx(ctx context.Context, tx *sql.Tx, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := tx.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func insertUserTx(ctx context.Context, tx *sql.Tx, u User) error {
	const q = `
INSERT INTO users (id, email, name, is_guest, pin_hash, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	var email any
	if u.Email != "" {
		email = u.Email
	}
	var expires any
	if u.ExpiresAt != nil {
		expires = *u.ExpiresAt
	}
	_, err := tx.ExecContext(ctx, q, u.ID, email, u.Name, u.IsGuest, u.PINHash, u.CreatedAt, expires)
	return mapUniqueViolation(err)
}

// mapUniqueViolation turns the email unique-constraint error into
// ErrEmailTaken. The pre-insert existence check gives the common case a
// friendly answer, but two concurrent registrations can both pass it; the
// constraint is the arbiter and its loser must still surface as a conflict.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrEmailTaken
	}
	return err
}

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

func deleteExpiredGuests(ctx context.Context, db *sql.DB, now time.Time) (int64, error) {
	// Dependent savings rows go via ON DELETE CASCADE.
	const q = `
DELETE FROM users
WHERE is_guest = TRUE AND expires_at IS NOT NULL AND expires_at < $1
`
	res, err := db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
