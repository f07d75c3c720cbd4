package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"capstack-api/pkg/logger"
	"capstack-api/pkg/utils"

	"github.com/google/uuid"
)

// Service provides account operations: registration, login, guest creation,
// and guest-row cleanup.
//
// Guest accounts are persisted as ordinary user rows so downstream writes
// never need an "is this a real user" special case. They get an expires_at
// and are deleted by SweepExpiredGuests; the access layer already prevents
// them from mutating anything, so only their own disposable rows go away.
type Service struct {
	db *sql.DB

	// guestTTL is the session TTL plus a grace period; swept rows are
	// guaranteed to be unreachable by any still-valid token.
	guestTTL time.Duration

	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(db *sql.DB, sessionTTL time.Duration) *Service {
	return &Service{
		db:       db,
		guestTTL: sessionTTL + 24*time.Hour,
		clock:    time.Now,
	}
}

// Register creates a registered account. The credential is a 4-digit PIN.
func (s *Service) Register(ctx context.Context, email, name, pin string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, fmt.Errorf("%w: valid email required", ErrInvalidArgument)
	}
	if name == "" {
		return User{}, fmt.Errorf("%w: name required", ErrInvalidArgument)
	}
	if err := ValidatePIN(pin); err != nil {
		return User{}, err
	}

	hash, err := hashPIN(pin)
	if err != nil {
		return User{}, fmt.Errorf("hashing pin: %w", err)
	}

	u := User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		IsGuest:   false,
		PINHash:   hash,
		CreatedAt: s.clock().UTC(),
	}

	err = utils.WithTx(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		exists, err := emailExistsTx(ctx, tx, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailTaken
		}
		return insertUserTx(ctx, tx, u)
	})
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifies an email/PIN pair. Lookup failure and PIN mismatch are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, pin string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidatePIN(pin); err != nil {
		return User{}, err
	}

	u, err := findByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if u.IsGuest || !checkPIN(u.PINHash, pin) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// CreateGuest persists a disposable guest account.
func (s *Service) CreateGuest(ctx context.Context) (User, error) {
	now := s.clock().UTC()
	expires := now.Add(s.guestTTL)

	u := User{
		ID:        newGuestID(now),
		Name:      "Guest User",
		IsGuest:   true,
		CreatedAt: now,
		ExpiresAt: &expires,
	}

	err := utils.WithTx(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return insertUserTx(ctx, tx, u)
	})
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// GetByID fetches a user row.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if id == "" {
		return User{}, ErrInvalidArgument
	}
	return findByID(ctx, s.db, id)
}

// SweepExpiredGuests deletes guest rows whose grace period has passed.
func (s *Service) SweepExpiredGuests(ctx context.Context) error {
	n, err := deleteExpiredGuests(ctx, s.db, s.clock().UTC())
	if err != nil {
		return err
	}
	if n > 0 {
		logger.From(ctx).Info("swept expired guest accounts", "count", n)
	}
	return nil
}

// newGuestID builds a subject id unique enough for disposable guest rows:
// millisecond timestamp plus a random suffix.
func newGuestID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("guest_%d_%s", now.UnixMilli(), suffix)
}
