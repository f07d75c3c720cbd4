package users

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}
	if got := mapUniqueViolation(dup); !errors.Is(got, ErrEmailTaken) {
		t.Fatalf("unique violation mapped to %v, want ErrEmailTaken", got)
	}

	// Wrapped errors still map; drivers and tx helpers add context.
	wrapped := fmt.Errorf("insert user: %w", dup)
	if got := mapUniqueViolation(wrapped); !errors.Is(got, ErrEmailTaken) {
		t.Fatalf("wrapped unique violation mapped to %v, want ErrEmailTaken", got)
	}

	other := &pgconn.PgError{Code: "23503"}
	if got := mapUniqueViolation(other); errors.Is(got, ErrEmailTaken) {
		t.Fatalf("foreign-key violation must not map to ErrEmailTaken")
	}
	if mapUniqueViolation(nil) != nil {
		t.Fatalf("nil must pass through")
	}
}
